// Package builtins provides the fixed set of native callables bound into
// an Interpreter's globals at construction: clock, printEnv, exit,
// setLogLevel, assert, includeStr, and eval.
package builtins

import (
	"lox/interp"
	"lox/types"
)

// nativeFunc is the shape every built-in implements: the same signature
// as Function.Call, so Native can satisfy interp.Callable directly.
type nativeFunc func(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError)

// Native is a built-in function value: a name (for diagnostics and
// to_string), a fixed arity, and the Go function implementing it.
type Native struct {
	Name   string
	ArityN int
	Fn     nativeFunc
}

func (n *Native) TypeName() string { return "callable" }
func (n *Native) String() string   { return "<native fn " + n.Name + ">" }

func (n *Native) Equal(other types.Value) bool {
	o, ok := other.(*Native)
	return ok && o == n
}

func (n *Native) Truthy() bool { return true }
func (n *Native) Arity() int   { return n.ArityN }

func (n *Native) Call(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	return n.Fn(i, args)
}

// Install binds every built-in into i's global environment.
func Install(i *interp.Interpreter) {
	register(i, "clock", 0, clock)
	register(i, "printEnv", 0, printEnv)
	register(i, "exit", 0, exit)
	register(i, "setLogLevel", 1, setLogLevel)
	register(i, "assert", 2, assert)
	register(i, "includeStr", 1, includeStr)
	register(i, "eval", 1, evalString)
}

func register(i *interp.Interpreter, name string, arity int, fn nativeFunc) {
	i.Globals.Define(name, &Native{Name: name, ArityN: arity, Fn: fn})
}
