package parser

import "lox/types"

// declaration parses one top-level or block-level declaration, recovering
// via synchronize if parsing panics with a parseError.
func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*parseError)
			if !ok {
				panic(r)
			}
			p.synchronize()
			stmt = &MalformedStmt{Pos: pe.token.Position, Critical: true, Message: pe.message}
		}
	}()

	switch {
	case p.match(TOKEN_CLASS):
		return p.classDeclaration()
	case p.match(TOKEN_FUN):
		return p.functionDeclaration(KindFunction)
	case p.match(TOKEN_VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// varDecl → ("var"|"let") IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() Stmt {
	pos := p.previous.Position
	name := p.consume(TOKEN_IDENTIFIER, "Expected variable name.")

	var initializer Expr = &EmptyExpr{Pos: name.Position}
	if p.match(TOKEN_EQUAL) {
		initializer = p.Expression()
	}

	p.consume(TOKEN_SEMICOLON, "Expected ';' after variable declaration.")
	return &VarStmt{Pos: pos, Name: name, Initializer: initializer}
}

// function → IDENT ( "(" parameters? ")" "{" block | "{" block )
//
// The no-parameter-list "{ block }" form is a getter, unless the member was
// already tagged Unbound by the caller: an unbound member takes no implicit
// "this" and is reached through the class itself, never through the
// getter-on-property-access mechanism, so "unbound" always wins over the
// parameterless-getter rule.
func (p *Parser) functionDeclaration(kind FunctionKind) *FunctionStmt {
	pos := p.current.Position
	name := p.consume(TOKEN_IDENTIFIER, "Expected "+kind.String()+" name.")

	if p.match(TOKEN_LBRACE) {
		body := p.block()
		getterKind := KindGetter
		if kind == KindUnbound {
			getterKind = KindUnbound
		}
		return &FunctionStmt{Pos: pos, Name: name, Params: nil, Body: body, Kind: getterKind}
	}

	p.consume(TOKEN_LPAREN, "Expected '(' after "+kind.String()+" name.")
	params := p.parameters()
	p.consume(TOKEN_LBRACE, "Expected '{' before "+kind.String()+" body.")
	body := p.block()
	return &FunctionStmt{Pos: pos, Name: name, Params: params, Body: body, Kind: kind}
}

func (p *Parser) parameters() []Token {
	var params []Token
	if !p.check(TOKEN_RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.current, "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(TOKEN_IDENTIFIER, "Expected parameter name."))
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	p.consume(TOKEN_RPAREN, "Expected ')' after parameters.")
	return params
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" ( ("unbound")? function )* "}"
func (p *Parser) classDeclaration() Stmt {
	pos := p.previous.Position
	name := p.consume(TOKEN_IDENTIFIER, "Expected class name.")

	var superclass *VariableExpr
	if p.match(TOKEN_LESS) {
		superName := p.consume(TOKEN_IDENTIFIER, "Expected superclass name.")
		superclass = &VariableExpr{Pos: superName.Position, Name: superName, Depth: NoDepth}
	}

	p.consume(TOKEN_LBRACE, "Expected '{' before class body.")

	var methods []*FunctionStmt
	for !p.check(TOKEN_RBRACE) && !p.isAtEnd() {
		kind := KindMethod
		if p.match(TOKEN_UNBOUND) {
			kind = KindUnbound
		}
		methods = append(methods, p.functionDeclaration(kind))
	}

	p.consume(TOKEN_RBRACE, "Expected '}' after class body.")
	return &ClassStmt{Pos: pos, Name: name, Superclass: superclass, Methods: methods}
}

// statement → ifStmt | forStmt | whileStmt | block
//           | printStmt | returnStmt | exprStmt
func (p *Parser) statement() Stmt {
	switch {
	case p.match(TOKEN_IF):
		return p.ifStatement()
	case p.match(TOKEN_FOR):
		return p.forStatement()
	case p.match(TOKEN_WHILE):
		return p.whileStatement()
	case p.match(TOKEN_PRINT):
		return p.printStatement()
	case p.match(TOKEN_RETURN):
		return p.returnStatement()
	case p.match(TOKEN_LBRACE):
		pos := p.previous.Position
		return &BlockStmt{Pos: pos, Statements: p.block()}
	case p.match(TOKEN_SEMICOLON):
		return &EmptyStmt{Pos: p.previous.Position}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(TOKEN_RBRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(TOKEN_RBRACE, "Expected '}' after block.")
	return stmts
}

func (p *Parser) printStatement() Stmt {
	pos := p.previous.Position
	value := p.Expression()
	p.consume(TOKEN_SEMICOLON, "Expected ';' after value.")
	return &PrintStmt{Pos: pos, Expression: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous
	var value Expr = &EmptyExpr{Pos: keyword.Position}
	if !p.check(TOKEN_SEMICOLON) {
		value = p.Expression()
	}
	p.consume(TOKEN_SEMICOLON, "Expected ';' after return value.")
	return &ReturnStmt{Pos: keyword.Position, Keyword: keyword, Value: value}
}

func (p *Parser) expressionStatement() Stmt {
	pos := p.current.Position
	expr := p.Expression()
	p.consume(TOKEN_SEMICOLON, "Expected ';' after expression.")
	return &ExprStmt{Pos: pos, Expression: expr}
}

func (p *Parser) ifStatement() Stmt {
	pos := p.previous.Position
	p.consume(TOKEN_LPAREN, "Expected '(' after 'if'.")
	condition := p.Expression()
	p.consume(TOKEN_RPAREN, "Expected ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(TOKEN_ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Pos: pos, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	pos := p.previous.Position
	p.consume(TOKEN_LPAREN, "Expected '(' after 'while'.")
	condition := p.Expression()
	p.consume(TOKEN_RPAREN, "Expected ')' after condition.")
	body := p.statement()
	return &WhileStmt{Pos: pos, Condition: condition, Body: body}
}

// forStmt is desugared into a block wrapping a WhileStmt, per the grammar:
// "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
func (p *Parser) forStatement() Stmt {
	pos := p.previous.Position
	p.consume(TOKEN_LPAREN, "Expected '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(TOKEN_SEMICOLON):
		initializer = nil
	case p.match(TOKEN_VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(TOKEN_SEMICOLON) {
		condition = p.Expression()
	}
	p.consume(TOKEN_SEMICOLON, "Expected ';' after loop condition.")

	var increment Expr
	if !p.check(TOKEN_RPAREN) {
		increment = p.Expression()
	}
	p.consume(TOKEN_RPAREN, "Expected ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Pos: pos, Statements: []Stmt{body, &ExprStmt{Pos: pos, Expression: increment}}}
	}

	if condition == nil {
		condition = &LiteralExpr{Pos: pos, Value: types.Bool(true)}
	}
	body = &WhileStmt{Pos: pos, Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Pos: pos, Statements: []Stmt{initializer, body}}
	}
	return body
}
