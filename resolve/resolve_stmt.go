package resolve

import "lox/parser"

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *parser.VarStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Initializer)
		r.define(s.Name)

	case *parser.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, s.Kind)

	case *parser.ClassStmt:
		r.resolveClass(s)

	case *parser.ExprStmt:
		r.resolveExpr(s.Expression)

	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)

	case *parser.ReturnStmt:
		r.resolveReturn(s)

	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *parser.EmptyStmt:
		// nothing to resolve

	case *parser.MalformedStmt:
		// a synchronized parse error; nothing further to resolve

	default:
		panic("resolve: unhandled statement type")
	}
}

func (r *Resolver) resolveReturn(s *parser.ReturnStmt) {
	if r.currentFunction == nil {
		r.errorAt(s.Keyword.Position.Line, "Can't return from top-level code.")
		return
	}

	_, isEmpty := s.Value.(*parser.EmptyExpr)

	if *r.currentFunction == parser.KindConstructor && !isEmpty {
		r.errorAt(s.Keyword.Position.Line, "Can't return a value from an initializer.")
	}

	if !isEmpty {
		r.functionNeedsReturn = false
	}

	r.resolveExpr(s.Value)
}

// resolveFunction pushes two nested scopes (parameter frame, then body
// frame) mirroring the runtime call-frame layout, resolves the body under
// the given kind, then pops both. The enclosing function/getter state is
// saved and restored around the call so nested functions see their own
// context.
func (r *Resolver) resolveFunction(fn *parser.FunctionStmt, kind parser.FunctionKind) {
	enclosingFunction := r.currentFunction
	enclosingNeedsReturn := r.functionNeedsReturn
	r.currentFunction = &kind
	r.functionNeedsReturn = kind == parser.KindGetter

	r.beginScope() // parameter frame
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}

	r.beginScope() // body frame
	r.resolveStmts(fn.Body)
	r.endScope()

	r.endScope()

	if kind == parser.KindGetter && r.functionNeedsReturn {
		r.warnAt(fn.Pos.Line, "Getter '"+fn.Name.Lexeme+"' has no return statement.")
	}

	r.currentFunction = enclosingFunction
	r.functionNeedsReturn = enclosingNeedsReturn
}

func (r *Resolver) resolveClass(c *parser.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classInClass

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorAt(c.Superclass.Name.Position.Line, "A class can't inherit from itself.")
		}
		r.currentClass = classInSubclass
		r.resolveExpr(c.Superclass)
	}

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range c.Methods {
		if method.Kind == parser.KindMethod && method.Name.Lexeme == "init" {
			method.Kind = parser.KindConstructor
		}
		r.resolveFunction(method, method.Kind)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
