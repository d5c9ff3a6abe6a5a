package builtins

import (
	"lox/interp"
	"lox/logging"
	"lox/types"
)

// setLogLevel sets the global Reporter's minimum printed level to one of
// "error"/"warning"/"info"/"debug". Any other string is a runtime error.
func setLogLevel(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	s, ok := args[0].(types.String)
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "setLogLevel expects a string argument.")
	}
	level, ok := logging.ParseLevel(string(s))
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "Unknown log level '%s'; expected error, warning, info, or debug.", string(s))
	}
	logging.SetLevel(level)
	return types.Ok(types.NilValue), nil
}
