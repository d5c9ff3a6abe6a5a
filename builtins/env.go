package builtins

import (
	"lox/interp"
	"lox/types"
)

// printEnv dumps the current environment chain (innermost frame first) to
// the interpreter's output stream, for interactive debugging from inside
// a running script. Always returns Nil.
func printEnv(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	i.Env().Dump(i.Out)
	return types.Ok(types.NilValue), nil
}
