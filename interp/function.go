package interp

import (
	"lox/parser"
	"lox/types"
)

// Function is a runtime closure: the declaration it was built from, the
// environment captured at definition time, and the kind that decides its
// call semantics (Constructor short-circuits to "this", Getter is invoked
// implicitly on property access, Lambda/Method/Unbound/Function all share
// the plain call path).
type Function struct {
	name    string
	params  []parser.Token
	body    []parser.Stmt
	closure *Environment
	kind    parser.FunctionKind
}

// NewFunction builds a runtime Function from a parsed declaration (or a
// lambda, whose name is the empty string) and the environment active at
// the point of declaration.
func NewFunction(name string, params []parser.Token, body []parser.Stmt, closure *Environment, kind parser.FunctionKind) *Function {
	return &Function{name: name, params: params, body: body, closure: closure, kind: kind}
}

func (f *Function) TypeName() string { return "callable" }

func (f *Function) String() string {
	if f.name == "" {
		return "<lambda>"
	}
	if f.kind == parser.KindGetter {
		return "<getter " + f.name + ">"
	}
	return "<fn " + f.name + ">"
}

func (f *Function) Equal(other types.Value) bool {
	o, ok := other.(*Function)
	return ok && o == f
}

func (f *Function) Truthy() bool { return true }

func (f *Function) Arity() int { return len(f.params) }

func (f *Function) Kind() parser.FunctionKind { return f.kind }

// Bind produces a new Function whose closure is a fresh frame over f's
// closure defining "this" → instance. The original f (the class's
// unbound-to-any-instance copy) is left untouched so it can be bound again
// for a different instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{name: f.name, params: f.params, body: f.body, closure: env, kind: f.kind}
}

// Call runs the function body in two nested frames enclosing its closure:
// an outer one binding the parameters, an inner one the body executes in.
// This mirrors the Resolver's own two-scope layout for a function (the
// component design is explicit that the param/body scope split exists to
// mirror this runtime shape), so a Depth the Resolver computed against its
// scope stack lands on the same frame at call time. A constructor always
// yields the bound "this" regardless of how its body completed; everything
// else yields the returned value, or Nil on fall-through. An Exit signal is
// never absorbed here — it keeps propagating to the top-level driver.
func (f *Function) Call(i *Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	paramEnv := NewEnvironment(f.closure)
	for idx, param := range f.params {
		paramEnv.Define(param.Lexeme, args[idx])
	}
	bodyEnv := NewEnvironment(paramEnv)

	result, rerr := i.executeBlock(f.body, bodyEnv)
	if rerr != nil {
		return types.Result{}, rerr
	}
	if result.IsExit() {
		return result, nil
	}

	if f.kind == parser.KindConstructor {
		this, _ := f.closure.Get("this")
		return types.Ok(this), nil
	}

	if result.IsReturn() {
		return types.Ok(result.Val), nil
	}
	return types.Ok(types.NilValue), nil
}
