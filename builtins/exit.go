package builtins

import (
	"lox/interp"
	"lox/types"
)

// exit raises the Exit control-flow signal, unwinding through every
// enclosing call and block to the top-level driver (spec.md §4.5/§7):
// it is never caught as a runtime error, and never runs a deferred
// restoration out of order since executeBlock still restores its
// environment on the way out.
func exit(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	return types.Exit("exit() called"), nil
}
