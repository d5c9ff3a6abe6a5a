package resolve

import "lox/parser"

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// nothing to resolve

	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)

	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.TernaryExpr:
		r.resolveExpr(e.Condition)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *parser.VariableExpr:
		r.resolveVariable(e)

	case *parser.EmptyExpr:
		// nothing to resolve

	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name, func(d int) { e.Depth = d })

	case *parser.GetExpr:
		r.resolveExpr(e.Object)

	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *parser.ThisExpr:
		r.resolveThis(e)

	case *parser.SuperExpr:
		r.resolveSuper(e)

	case *parser.LambdaExpr:
		r.resolveLambda(e)

	case *parser.MalformedExpr:
		// a synchronized parse error; nothing further to resolve

	default:
		panic("resolve: unhandled expression type")
	}
}

func (r *Resolver) resolveVariable(e *parser.VariableExpr) {
	if s := r.peekScope(); s != nil {
		if defined, ok := s[e.Name.Lexeme]; ok && !defined {
			r.errorAt(e.Name.Position.Line, "Can't read local variable '"+e.Name.Lexeme+"' in its own initializer.")
		}
	}
	r.resolveLocal(e.Name, func(d int) { e.Depth = d })
}

func (r *Resolver) resolveThis(e *parser.ThisExpr) {
	if r.currentClass == classNone {
		r.errorAt(e.Keyword.Position.Line, "Can't use 'this' outside of a class.")
		return
	}
	if r.currentFunction != nil && *r.currentFunction == parser.KindUnbound {
		r.errorAt(e.Keyword.Position.Line, "Can't use 'this' in an unbound method.")
		return
	}
	r.resolveLocal(e.Keyword, func(d int) { e.Depth = d })
}

func (r *Resolver) resolveSuper(e *parser.SuperExpr) {
	if r.currentClass == classNone {
		r.errorAt(e.Keyword.Position.Line, "Can't use 'super' outside of a class.")
		return
	}
	if r.currentClass != classInSubclass {
		r.errorAt(e.Keyword.Position.Line, "Can't use 'super' in a class with no superclass.")
		return
	}
	e.IsUnboundContext = r.currentFunction != nil && *r.currentFunction == parser.KindUnbound
	r.resolveLocal(e.Keyword, func(d int) { e.Depth = d })
}

func (r *Resolver) resolveLambda(e *parser.LambdaExpr) {
	enclosingFunction := r.currentFunction
	enclosingNeedsReturn := r.functionNeedsReturn
	kind := parser.KindLambda
	r.currentFunction = &kind
	r.functionNeedsReturn = false

	r.beginScope()
	for _, param := range e.Params {
		r.declare(param)
		r.define(param)
	}

	r.beginScope()
	r.resolveStmts(e.Body)
	r.endScope()

	r.endScope()

	r.currentFunction = enclosingFunction
	r.functionNeedsReturn = enclosingNeedsReturn
}
