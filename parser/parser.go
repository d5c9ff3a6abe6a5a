// Package parser lexes and parses Lox source into an annotatable AST: a
// Lexer turns source text into a Token stream, and a recursive-descent
// Parser turns that stream into Stmt/Expr trees. Parse errors are reported
// through an ErrorSink and recovered from at declaration boundaries rather
// than aborting the whole parse.
package parser

import "lox/types"

// Parser is a recursive-descent parser with one token of lookahead. It
// consumes a Lexer directly rather than a pre-materialized token slice,
// since source is only ever walked once.
type Parser struct {
	lexer    *Lexer
	sink     ErrorSink
	previous Token
	current  Token
	hadError bool
}

// NewParser creates a Parser over source. sink receives every lexical and
// syntactic error/warning; it may be nil in tests that only care about the
// returned AST shape.
func NewParser(source string, sink ErrorSink) *Parser {
	p := &Parser{sink: sink}
	p.lexer = NewLexer(source, lexerSink{p})
	p.current = p.lexer.NextToken()
	return p
}

// lexerSink forwards the Lexer's reports to the Parser's sink and marks the
// Parser as failed, so HadError also covers lexical errors.
type lexerSink struct{ p *Parser }

func (s lexerSink) Error(line int, message string) {
	s.p.hadError = true
	if s.p.sink != nil {
		s.p.sink.Error(line, message)
	}
}

func (s lexerSink) Warn(line int, message string) {
	if s.p.sink != nil {
		s.p.sink.Warn(line, message)
	}
}

// Parse runs the full program grammar, returning one Stmt per top-level
// declaration. A declaration that fails to parse becomes a MalformedStmt
// rather than aborting the rest of the program.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts
}

// HadError reports whether any error was reported to the sink during
// parsing (including lexical errors raised by the underlying Lexer).
func (p *Parser) HadError() bool { return p.hadError }

func (p *Parser) isAtEnd() bool { return p.current.Type == TOKEN_EOF }

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	p.previous = p.current
	if p.current.Type != TOKEN_EOF {
		p.current = p.lexer.NextToken()
	}
	return p.previous
}

func (p *Parser) check(t TokenType) bool {
	return p.current.Type == t
}

// match advances and returns true if the current token is one of types.
func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or reports message at the
// current token and raises a parseError to unwind to the nearest
// synchronize point.
func (p *Parser) consume(t TokenType, message string) Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.current, message))
}

// parseError is the parser's internal unwinding signal: recovered by
// synchronize (declaration level) or by a caller that wants to downgrade a
// failure into a Malformed node instead of propagating further.
type parseError struct {
	token   Token
	message string
}

func (e *parseError) Error() string { return e.message }

// errorAt reports message at token's line through the sink and returns a
// parseError value (the caller decides whether to panic with it).
func (p *Parser) errorAt(tok Token, message string) *parseError {
	p.hadError = true
	if p.sink != nil {
		p.sink.Error(tok.Position.Line, message)
	}
	return &parseError{token: tok, message: message}
}

// warnAt reports a non-fatal warning at token's line.
func (p *Parser) warnAt(tok Token, message string) {
	if p.sink != nil {
		p.sink.Warn(tok.Position.Line, message)
	}
}

// synchronize discards tokens until it finds a plausible statement
// boundary: just past a ';', or just before a keyword that starts a new
// declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous.Type == TOKEN_SEMICOLON {
			return
		}
		switch p.current.Type {
		case TOKEN_CLASS, TOKEN_FUN, TOKEN_VAR, TOKEN_FOR,
			TOKEN_IF, TOKEN_WHILE, TOKEN_PRINT, TOKEN_RETURN:
			return
		}
		p.advance()
	}
}

// literalToken converts a NUMBER or STRING token into its Value.
func literalToken(tok Token) types.Value {
	switch tok.Type {
	case TOKEN_NUMBER:
		return NumberLiteral(tok.Literal)
	case TOKEN_STRING:
		return types.String(tok.Literal)
	}
	return types.NilValue
}
