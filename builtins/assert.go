package builtins

import (
	"lox/interp"
	"lox/types"
)

// assert(condition, message) raises a runtime error carrying message when
// condition is false; otherwise it is a no-op returning Nil. A condition
// that is not a bool, or a message that is not a string, is itself a
// runtime error.
func assert(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	b, ok := args[0].(types.Bool)
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "assert expects a bool as its first argument.")
	}
	msg, ok := args[1].(types.String)
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "assert expects a string as its second argument.")
	}
	if !bool(b) {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "%s", string(msg))
	}
	return types.Ok(types.NilValue), nil
}
