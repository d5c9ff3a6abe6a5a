package interp

import (
	"fmt"

	"lox/parser"
	"lox/types"
)

// execute dispatches one statement against the interpreter's current
// environment (i.env), returning the control-flow signal in progress (if
// any) for the caller to observe and re-propagate.
func (i *Interpreter) execute(stmt parser.Stmt) (types.Result, *types.RuntimeError) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		return i.evaluate(s.Expression)

	case *parser.PrintStmt:
		result, rerr := i.evaluate(s.Expression)
		if rerr != nil || !result.IsNormal() {
			return result, rerr
		}
		fmt.Fprintln(i.Out, types.Stringify(result.Val))
		return types.Ok(types.NilValue), nil

	case *parser.VarStmt:
		result, rerr := i.evaluate(s.Initializer)
		if rerr != nil || !result.IsNormal() {
			return result, rerr
		}
		i.env.Define(s.Name.Lexeme, result.Val)
		return types.Ok(types.NilValue), nil

	case *parser.BlockStmt:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))

	case *parser.IfStmt:
		cond, rerr := i.evaluate(s.Condition)
		if rerr != nil || !cond.IsNormal() {
			return cond, rerr
		}
		if types.Truthy(cond.Val) {
			return i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return types.Ok(types.NilValue), nil

	case *parser.WhileStmt:
		for {
			cond, rerr := i.evaluate(s.Condition)
			if rerr != nil || !cond.IsNormal() {
				return cond, rerr
			}
			if !types.Truthy(cond.Val) {
				break
			}
			result, rerr := i.execute(s.Body)
			if rerr != nil || !result.IsNormal() {
				return result, rerr
			}
		}
		return types.Ok(types.NilValue), nil

	case *parser.FunctionStmt:
		fn := NewFunction(s.Name.Lexeme, s.Params, s.Body, i.env, s.Kind)
		i.env.Define(s.Name.Lexeme, fn)
		return types.Ok(types.NilValue), nil

	case *parser.ReturnStmt:
		result, rerr := i.evaluate(s.Value)
		if rerr != nil || !result.IsNormal() {
			return result, rerr
		}
		return types.Return(result.Val), nil

	case *parser.ClassStmt:
		return i.executeClass(s)

	case *parser.EmptyStmt:
		return types.Ok(types.NilValue), nil

	case *parser.MalformedStmt:
		if s.Critical {
			return types.Result{}, types.NewRuntimeError(s.Pos.Line, "%s", s.Message)
		}
		return types.Ok(types.NilValue), nil

	default:
		panic("interp: unhandled statement type")
	}
}

// executeClass builds the runtime Class for a class declaration. The
// class's own name is defined (as Nil) before its methods are built so a
// method body can recursively reference its own class by name through the
// same environment slot; if there's a superclass, a "super" frame wraps
// the defining environment for the duration of building methods, matching
// the Resolver's scope layout exactly.
func (i *Interpreter) executeClass(s *parser.ClassStmt) (types.Result, *types.RuntimeError) {
	var superclass *Class
	if s.Superclass != nil {
		result, rerr := i.evaluate(s.Superclass)
		if rerr != nil || !result.IsNormal() {
			return result, rerr
		}
		sc, ok := result.Val.(*Class)
		if !ok {
			return types.Result{}, types.NewRuntimeError(s.Superclass.Position().Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, types.NilValue)

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	class := NewClass(s.Name.Lexeme, superclass)
	for _, m := range s.Methods {
		fn := NewFunction(m.Name.Lexeme, m.Params, m.Body, classEnv, m.Kind)
		switch m.Kind {
		case parser.KindGetter:
			class.Getters[m.Name.Lexeme] = fn
		case parser.KindUnbound:
			class.Unbounds[m.Name.Lexeme] = fn
		default:
			class.Methods[m.Name.Lexeme] = fn
		}
	}

	i.env.Assign(s.Name.Lexeme, class)
	return types.Ok(types.NilValue), nil
}
