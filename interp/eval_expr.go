package interp

import (
	"strconv"

	"lox/parser"
	"lox/types"
)

// evaluate dispatches one expression against the interpreter's current
// environment.
func (i *Interpreter) evaluate(expr parser.Expr) (types.Result, *types.RuntimeError) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return types.Ok(e.Value), nil

	case *parser.EmptyExpr:
		return types.Ok(types.NilValue), nil

	case *parser.GroupingExpr:
		return i.evaluate(e.Expression)

	case *parser.UnaryExpr:
		return i.evalUnary(e)

	case *parser.BinaryExpr:
		return i.evalBinary(e)

	case *parser.TernaryExpr:
		return i.evalTernary(e)

	case *parser.LogicalExpr:
		return i.evalLogical(e)

	case *parser.CallExpr:
		return i.evalCall(e)

	case *parser.VariableExpr:
		return i.evalVariable(e)

	case *parser.AssignExpr:
		return i.evalAssign(e)

	case *parser.GetExpr:
		return i.evalGet(e)

	case *parser.SetExpr:
		return i.evalSet(e)

	case *parser.ThisExpr:
		return i.evalThis(e)

	case *parser.SuperExpr:
		return i.evalSuper(e)

	case *parser.LambdaExpr:
		return types.Ok(NewFunction("", e.Params, e.Body, i.env, parser.KindLambda)), nil

	case *parser.MalformedExpr:
		if e.Critical {
			return types.Result{}, types.NewRuntimeError(e.Pos.Line, "%s", e.Message)
		}
		return types.Ok(types.NilValue), nil

	default:
		panic("interp: unhandled expression type")
	}
}

// operand evaluates e and reports whether the caller should keep going.
// ok is false when the caller must immediately return (value, flow, rerr)
// as-is: either a runtime error occurred, or a return/exit signal is
// unwinding through this point and must not be treated as an ordinary
// value.
func (i *Interpreter) operand(e parser.Expr) (val types.Value, flow types.Result, rerr *types.RuntimeError, ok bool) {
	result, rerr := i.evaluate(e)
	if rerr != nil {
		return nil, types.Result{}, rerr, false
	}
	if !result.IsNormal() {
		return nil, result, nil, false
	}
	return result.Val, types.Result{}, nil, true
}

func (i *Interpreter) evalUnary(e *parser.UnaryExpr) (types.Result, *types.RuntimeError) {
	right, flow, rerr, ok := i.operand(e.Right)
	if !ok {
		return flow, rerr
	}

	switch e.Operator.Type {
	case parser.TOKEN_MINUS:
		n, isNum := right.(types.Number)
		if !isNum {
			return types.Result{}, types.NewRuntimeError(e.Operator.Position.Line, "Operand must be a number.")
		}
		return types.Ok(-n), nil

	case parser.TOKEN_BANG:
		return types.Ok(types.Bool(!types.Truthy(right))), nil

	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalBinary(e *parser.BinaryExpr) (types.Result, *types.RuntimeError) {
	left, flow, rerr, ok := i.operand(e.Left)
	if !ok {
		return flow, rerr
	}
	right, flow, rerr, ok := i.operand(e.Right)
	if !ok {
		return flow, rerr
	}
	line := e.Operator.Position.Line

	switch e.Operator.Type {
	case parser.TOKEN_COMMA:
		// The comma operator: evaluate both for effect, yield the right.
		return types.Ok(right), nil

	case parser.TOKEN_PLUS:
		ln, lIsNum := left.(types.Number)
		rn, rIsNum := right.(types.Number)
		if lIsNum && rIsNum {
			return types.Ok(ln + rn), nil
		}
		_, lIsStr := left.(types.String)
		_, rIsStr := right.(types.String)
		if lIsStr || rIsStr {
			return types.Ok(types.String(types.Stringify(left) + types.Stringify(right))), nil
		}
		return types.Result{}, types.NewRuntimeError(line, "Operands must be two numbers or one must be a string.")

	case parser.TOKEN_MINUS, parser.TOKEN_STAR, parser.TOKEN_SLASH:
		ln, lIsNum := left.(types.Number)
		rn, rIsNum := right.(types.Number)
		if !lIsNum || !rIsNum {
			return types.Result{}, types.NewRuntimeError(line, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case parser.TOKEN_MINUS:
			return types.Ok(ln - rn), nil
		case parser.TOKEN_STAR:
			return types.Ok(ln * rn), nil
		default: // TOKEN_SLASH
			if rn == 0 {
				return types.Result{}, types.NewRuntimeError(line, "Division by zero.")
			}
			return types.Ok(ln / rn), nil
		}

	case parser.TOKEN_GREATER, parser.TOKEN_GREATER_EQUAL, parser.TOKEN_LESS, parser.TOKEN_LESS_EQUAL:
		return i.evalComparison(e.Operator.Type, left, right, line)

	case parser.TOKEN_EQUAL_EQUAL:
		return types.Ok(types.Bool(valuesEqual(left, right))), nil

	case parser.TOKEN_BANG_EQUAL:
		return types.Ok(types.Bool(!valuesEqual(left, right))), nil

	default:
		panic("interp: unhandled binary operator")
	}
}

func (i *Interpreter) evalComparison(op parser.TokenType, left, right types.Value, line int) (types.Result, *types.RuntimeError) {
	if ln, ok := left.(types.Number); ok {
		rn, ok := right.(types.Number)
		if !ok {
			return types.Result{}, types.NewRuntimeError(line, "Operands must be two numbers or two strings.")
		}
		return types.Ok(types.Bool(numberCompare(op, float64(ln), float64(rn)))), nil
	}
	if ls, ok := left.(types.String); ok {
		rs, ok := right.(types.String)
		if !ok {
			return types.Result{}, types.NewRuntimeError(line, "Operands must be two numbers or two strings.")
		}
		return types.Ok(types.Bool(stringCompare(op, string(ls), string(rs)))), nil
	}
	return types.Result{}, types.NewRuntimeError(line, "Operands must be two numbers or two strings.")
}

func numberCompare(op parser.TokenType, l, r float64) bool {
	switch op {
	case parser.TOKEN_GREATER:
		return l > r
	case parser.TOKEN_GREATER_EQUAL:
		return l >= r
	case parser.TOKEN_LESS:
		return l < r
	default: // TOKEN_LESS_EQUAL
		return l <= r
	}
}

func stringCompare(op parser.TokenType, l, r string) bool {
	switch op {
	case parser.TOKEN_GREATER:
		return l > r
	case parser.TOKEN_GREATER_EQUAL:
		return l >= r
	case parser.TOKEN_LESS:
		return l < r
	default: // TOKEN_LESS_EQUAL
		return l <= r
	}
}

// valuesEqual implements the cross-variant equality rule: different
// variants are never equal, even when one might stringify the same way.
func valuesEqual(left, right types.Value) bool {
	return left.Equal(right)
}

func (i *Interpreter) evalTernary(e *parser.TernaryExpr) (types.Result, *types.RuntimeError) {
	cond, flow, rerr, ok := i.operand(e.Condition)
	if !ok {
		return flow, rerr
	}
	if types.Truthy(cond) {
		return i.evaluate(e.Then)
	}
	return i.evaluate(e.Else)
}

func (i *Interpreter) evalLogical(e *parser.LogicalExpr) (types.Result, *types.RuntimeError) {
	left, flow, rerr, ok := i.operand(e.Left)
	if !ok {
		return flow, rerr
	}
	if e.Operator.Type == parser.TOKEN_OR {
		if types.Truthy(left) {
			return types.Ok(left), nil
		}
	} else { // TOKEN_AND
		if !types.Truthy(left) {
			return types.Ok(left), nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalVariable(e *parser.VariableExpr) (types.Result, *types.RuntimeError) {
	if e.Depth == parser.NoDepth {
		v, ok := i.Globals.Get(e.Name.Lexeme)
		if !ok {
			return types.Result{}, types.NewRuntimeError(e.Name.Position.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return types.Ok(v), nil
	}
	return types.Ok(i.mustGetAt(e.Depth, e.Name.Lexeme)), nil
}

// mustGetAt fetches name from exactly depth scopes out. The Resolver
// guarantees this frame defines name (§4.3's contract); a miss here means
// the interpreter's runtime frame shape has drifted from the Resolver's
// scope-stack model, which is a bug in this package, not a user-facing
// error.
func (i *Interpreter) mustGetAt(depth int, name string) types.Value {
	v, ok := i.env.GetAt(depth, name)
	if !ok {
		panic("interp: resolver depth " + strconv.Itoa(depth) + " for '" + name + "' did not match a runtime frame")
	}
	return v
}

func (i *Interpreter) evalAssign(e *parser.AssignExpr) (types.Result, *types.RuntimeError) {
	value, flow, rerr, ok := i.operand(e.Value)
	if !ok {
		return flow, rerr
	}
	if e.Depth == parser.NoDepth {
		if !i.Globals.Assign(e.Name.Lexeme, value) {
			return types.Result{}, types.NewRuntimeError(e.Name.Position.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
	} else {
		i.env.AssignAt(e.Depth, e.Name.Lexeme, value)
	}
	return types.Ok(value), nil
}

func (i *Interpreter) evalCall(e *parser.CallExpr) (types.Result, *types.RuntimeError) {
	callee, flow, rerr, ok := i.operand(e.Callee)
	if !ok {
		return flow, rerr
	}

	args := make([]types.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, flow, rerr, ok := i.operand(argExpr)
		if !ok {
			return flow, rerr
		}
		args = append(args, arg)
	}

	callable, isCallable := callee.(Callable)
	if !isCallable {
		return types.Result{}, types.NewRuntimeError(e.Paren.Position.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return types.Result{}, types.NewRuntimeError(e.Paren.Position.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	if rerr := i.enterCall(e.Paren.Position.Line); rerr != nil {
		return types.Result{}, rerr
	}
	defer i.exitCall()

	previousLine := i.callLine
	i.callLine = e.Paren.Position.Line
	defer func() { i.callLine = previousLine }()

	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *parser.GetExpr) (types.Result, *types.RuntimeError) {
	obj, flow, rerr, ok := i.operand(e.Object)
	if !ok {
		return flow, rerr
	}
	line := e.Name.Position.Line
	name := e.Name.Lexeme

	switch target := obj.(type) {
	case *Instance:
		if getter, found := target.Class.FindGetter(name); found {
			return getter.Bind(target).Call(i, nil)
		}
		if field, found := target.Fields[name]; found {
			return types.Ok(field), nil
		}
		if method, found := target.Class.FindMethod(name); found {
			return types.Ok(method.Bind(target)), nil
		}
		return types.Result{}, types.NewRuntimeError(line, "Undefined property '%s'.", name)

	case *Class:
		if unbound, found := target.FindUnbound(name); found {
			return types.Ok(unbound), nil
		}
		return types.Result{}, types.NewRuntimeError(line, "Undefined unbound member '%s'.", name)

	default:
		return types.Result{}, types.NewRuntimeError(line, "Only instances and classes have properties.")
	}
}

func (i *Interpreter) evalSet(e *parser.SetExpr) (types.Result, *types.RuntimeError) {
	obj, flow, rerr, ok := i.operand(e.Object)
	if !ok {
		return flow, rerr
	}
	instance, isInstance := obj.(*Instance)
	if !isInstance {
		return types.Result{}, types.NewRuntimeError(e.Name.Position.Line, "Only instances have fields.")
	}
	if _, found := instance.Class.FindGetter(e.Name.Lexeme); found {
		return types.Result{}, types.NewRuntimeError(e.Name.Position.Line, "A getter by this name exists; it cannot be overwritten by a field.")
	}

	value, flow, rerr, ok := i.operand(e.Value)
	if !ok {
		return flow, rerr
	}
	instance.Fields[e.Name.Lexeme] = value
	return types.Ok(value), nil
}

func (i *Interpreter) evalThis(e *parser.ThisExpr) (types.Result, *types.RuntimeError) {
	return types.Ok(i.mustGetAt(e.Depth, "this")), nil
}

// evalSuper implements the depth arithmetic described by the component
// design: "super" lives one scope out from "this" in the non-unbound
// case. In an unbound context the Resolver's always-pushed "this" scope
// was never materialized as a runtime frame (unbound members are never
// bound to an instance), so the super frame is actually one scope
// shallower than the naively resolved depth.
func (i *Interpreter) evalSuper(e *parser.SuperExpr) (types.Result, *types.RuntimeError) {
	line := e.Member.Position.Line

	if e.IsUnboundContext {
		superclass := i.mustGetAt(e.Depth-1, "super").(*Class)
		fn, found := superclass.FindUnbound(e.Member.Lexeme)
		if !found {
			return types.Result{}, types.NewRuntimeError(line, "Undefined unbound member '%s'.", e.Member.Lexeme)
		}
		return types.Ok(fn), nil
	}

	superclass := i.mustGetAt(e.Depth, "super").(*Class)
	instance := i.mustGetAt(e.Depth-1, "this").(*Instance)

	if method, found := superclass.FindMethod(e.Member.Lexeme); found {
		return types.Ok(method.Bind(instance)), nil
	}
	if unbound, found := superclass.FindUnbound(e.Member.Lexeme); found {
		return types.Ok(unbound), nil
	}
	if getter, found := superclass.FindGetter(e.Member.Lexeme); found {
		return getter.Bind(instance).Call(i, nil)
	}
	return types.Result{}, types.NewRuntimeError(line, "Undefined property '%s'.", e.Member.Lexeme)
}
