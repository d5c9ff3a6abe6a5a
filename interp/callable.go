package interp

import "lox/types"

// Callable is any value that can appear on the left of a call expression:
// a user-defined Function, a bound method, or a Class (whose "call"
// constructs an Instance).
type Callable interface {
	types.Value
	Arity() int
	Call(i *Interpreter, args []types.Value) (types.Result, *types.RuntimeError)
}
