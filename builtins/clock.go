package builtins

import (
	"time"

	"lox/interp"
	"lox/types"
)

// clock returns the number of seconds since the Unix epoch as a Number,
// matching the usual Lox-family benchmark built-in.
func clock(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	return types.Ok(types.Number(float64(time.Now().UnixNano()) / 1e9)), nil
}
