package parser

import (
	"fmt"

	"lox/types"
)

// Expression parses the full comma-operator level: the widest expression
// grammar, used wherever a statement embeds a bare expression (print,
// expression statements, grouping). Each comma-joined operand is evaluated
// for its value but only the last one is kept; the interpreter implements
// that by treating TOKEN_COMMA as an ordinary left-associative BinaryExpr
// operator (there is no dedicated comma AST node).
func (p *Parser) Expression() Expr {
	expr := p.assignment()
	for p.match(TOKEN_COMMA) {
		op := p.previous
		right := p.assignment()
		expr = &BinaryExpr{Pos: expr.Position(), Left: expr, Operator: op, Right: right}
	}
	return expr
}

// assignment is right-associative: "ternary ( "=" assignment )?". The LHS
// must be a Variable or Get; a Get on the left rewrites to Set. Any other
// LHS is reported as an error but does not unwind parsing.
func (p *Parser) assignment() Expr {
	expr := p.ternary()

	if p.match(TOKEN_EQUAL) {
		equals := p.previous
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Pos: expr.Position(), Name: target.Name, Value: value, Depth: NoDepth}
		case *GetExpr:
			return &SetExpr{Pos: expr.Position(), Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

// ternary is "logical_or ( "?" expression ":" expression )?".
func (p *Parser) ternary() Expr {
	expr := p.logicalOr()

	if p.match(TOKEN_QUESTION) {
		thenExpr := p.Expression()
		p.consume(TOKEN_COLON, "Expected ':' in ternary expression.")
		elseExpr := p.Expression()
		return &TernaryExpr{Pos: expr.Position(), Condition: expr, Then: thenExpr, Else: elseExpr}
	}
	return expr
}

func (p *Parser) logicalOr() Expr {
	expr := p.logicalAnd()
	for p.match(TOKEN_OR) {
		op := p.previous
		right := p.logicalAnd()
		expr = &LogicalExpr{Pos: expr.Position(), Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) logicalAnd() Expr {
	expr := p.equality()
	for p.match(TOKEN_AND) {
		op := p.previous
		right := p.equality()
		expr = &LogicalExpr{Pos: expr.Position(), Left: expr, Operator: op, Right: right}
	}
	return expr
}

// leftAssocBinary implements the shared error-recovery helper from the
// component design: if the current token is a forbidden leading operator
// for this level (a binary operator that cannot also be a prefix/unary
// operator), consume it, parse and discard the operand it would have
// applied to, report the error, and return a non-critical Malformed node
// instead of aborting. Otherwise parse the normal left-associative chain.
func (p *Parser) leftAssocBinary(operand func() Expr, forbidden []TokenType, ops ...TokenType) Expr {
	if p.matchAny(forbidden) {
		op := p.previous
		operand()
		p.errorAt(op, fmt.Sprintf("Binary operator '%s' has no left-hand operand.", op.Lexeme))
		return &MalformedExpr{Pos: op.Position, Critical: false, Message: "missing left operand for '" + op.Lexeme + "'"}
	}

	expr := operand()
	for p.matchAny(ops) {
		op := p.previous
		right := operand()
		expr = &BinaryExpr{Pos: expr.Position(), Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) matchAny(types []TokenType) bool {
	return p.match(types...)
}

func (p *Parser) equality() Expr {
	return p.leftAssocBinary(p.comparison,
		[]TokenType{TOKEN_BANG_EQUAL, TOKEN_EQUAL_EQUAL},
		TOKEN_BANG_EQUAL, TOKEN_EQUAL_EQUAL)
}

func (p *Parser) comparison() Expr {
	return p.leftAssocBinary(p.addition,
		[]TokenType{TOKEN_GREATER, TOKEN_GREATER_EQUAL, TOKEN_LESS, TOKEN_LESS_EQUAL},
		TOKEN_GREATER, TOKEN_GREATER_EQUAL, TOKEN_LESS, TOKEN_LESS_EQUAL)
}

func (p *Parser) addition() Expr {
	// "-" is a legal unary prefix, so only "+" is forbidden as a leading
	// token here.
	return p.leftAssocBinary(p.multiplication,
		[]TokenType{TOKEN_PLUS},
		TOKEN_MINUS, TOKEN_PLUS)
}

func (p *Parser) multiplication() Expr {
	return p.leftAssocBinary(p.unary,
		[]TokenType{TOKEN_STAR, TOKEN_SLASH},
		TOKEN_SLASH, TOKEN_STAR)
}

func (p *Parser) unary() Expr {
	if p.match(TOKEN_BANG, TOKEN_MINUS) {
		op := p.previous
		right := p.unary()
		return &UnaryExpr{Pos: op.Position, Operator: op, Right: right}
	}
	return p.call()
}

// call is "primary ( "(" arguments? ")" | "." IDENT )*".
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		if p.match(TOKEN_LPAREN) {
			expr = p.finishCall(expr)
		} else if p.match(TOKEN_DOT) {
			name := p.consume(TOKEN_IDENTIFIER, "Expected property name after '.'.")
			expr = &GetExpr{Pos: expr.Position(), Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr
}

const maxArgs = 255

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(TOKEN_RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.current, "Can't have more than 255 arguments.")
			}
			args = append(args, p.assignment())
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	paren := p.consume(TOKEN_RPAREN, "Expected ')' after arguments.")
	return &CallExpr{Pos: callee.Position(), Callee: callee, Paren: paren, Args: args}
}

// primary is the grammar's terminal production: literals, groupings,
// names, "this"/"super", and lambdas.
func (p *Parser) primary() Expr {
	if p.match(TOKEN_FALSE) {
		return &LiteralExpr{Pos: p.previous.Position, Value: types.Bool(false)}
	}
	if p.match(TOKEN_TRUE) {
		return &LiteralExpr{Pos: p.previous.Position, Value: types.Bool(true)}
	}
	if p.match(TOKEN_NIL) {
		return &LiteralExpr{Pos: p.previous.Position, Value: types.NilValue}
	}
	if p.match(TOKEN_NUMBER) || p.match(TOKEN_STRING) {
		tok := p.previous
		return &LiteralExpr{Pos: tok.Position, Value: literalToken(tok)}
	}
	if p.match(TOKEN_SUPER) {
		keyword := p.previous
		p.consume(TOKEN_DOT, "Expected '.' after 'super'.")
		member := p.consume(TOKEN_IDENTIFIER, "Expected superclass member name.")
		return &SuperExpr{Pos: keyword.Position, Keyword: keyword, Member: member, Depth: NoDepth}
	}
	if p.match(TOKEN_THIS) {
		return &ThisExpr{Pos: p.previous.Position, Keyword: p.previous, Depth: NoDepth}
	}
	if p.match(TOKEN_IDENTIFIER) {
		return &VariableExpr{Pos: p.previous.Position, Name: p.previous, Depth: NoDepth}
	}
	if p.match(TOKEN_LPAREN) {
		pos := p.previous.Position
		expr := p.Expression()
		p.consume(TOKEN_RPAREN, "Expected ')' after expression.")
		return &GroupingExpr{Pos: pos, Expression: expr}
	}
	if p.match(TOKEN_PIPE) {
		return p.lambda()
	}

	panic(p.errorAt(p.current, "Expected expression."))
}

// lambda parses "|params| { block }" or "|params| expr" once the opening
// "|" has already been consumed by primary.
func (p *Parser) lambda() Expr {
	pos := p.previous.Position
	var params []Token
	if !p.check(TOKEN_PIPE) {
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
	p.consume(TOKEN_PIPE, "Expected closing '|' after lambda parameters.")

	var body []Stmt
	if p.match(TOKEN_LBRACE) {
		body = p.block()
	} else {
		expr := p.Expression()
		body = []Stmt{&ReturnStmt{Pos: pos, Keyword: Token{Type: TOKEN_RETURN, Position: pos}, Value: expr}}
	}
	return &LambdaExpr{Pos: pos, Params: params, Body: body}
}
