package parser

import "testing"

type recordingSink struct {
	errors []string
	warns  []string
}

func (s *recordingSink) Error(line int, message string) {
	s.errors = append(s.errors, message)
}

func (s *recordingSink) Warn(line int, message string) {
	s.warns = append(s.warns, message)
}

func allTokens(src string, sink ErrorSink) []Token {
	l := NewLexer(src, sink)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF {
			return toks
		}
	}
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	toks := allTokens(`(){},.-+;*/?:|!= == >= <= > < = !`, nil)
	want := []TokenType{
		TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACE, TOKEN_RBRACE, TOKEN_COMMA,
		TOKEN_DOT, TOKEN_MINUS, TOKEN_PLUS, TOKEN_SEMICOLON, TOKEN_STAR,
		TOKEN_SLASH, TOKEN_QUESTION, TOKEN_COLON, TOKEN_PIPE, TOKEN_BANG_EQUAL,
		TOKEN_EQUAL_EQUAL, TOKEN_GREATER_EQUAL, TOKEN_LESS_EQUAL, TOKEN_GREATER,
		TOKEN_LESS, TOKEN_EQUAL, TOKEN_BANG, TOKEN_EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestLexerKeywordsAndLetSynonym(t *testing.T) {
	toks := allTokens("var let fn fun unbound this super", nil)
	want := []TokenType{TOKEN_VAR, TOKEN_VAR, TOKEN_FUN, TOKEN_FUN, TOKEN_UNBOUND, TOKEN_THIS, TOKEN_SUPER}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Type, w)
		}
	}
}

func TestLexerNumberRequiresDigitAfterDot(t *testing.T) {
	toks := allTokens("123.456 1.", nil)
	if toks[0].Type != TOKEN_NUMBER || toks[0].Lexeme != "123.456" {
		t.Fatalf("got %v %q", toks[0].Type, toks[0].Lexeme)
	}
	if toks[1].Type != TOKEN_NUMBER || toks[1].Lexeme != "1" {
		t.Fatalf("got %v %q, want NUMBER \"1\"", toks[1].Type, toks[1].Lexeme)
	}
	if toks[2].Type != TOKEN_DOT {
		t.Fatalf("got %v, want DOT", toks[2].Type)
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks := allTokens(`"hello, world"`, nil)
	if toks[0].Type != TOKEN_STRING || toks[0].Literal != "hello, world" {
		t.Fatalf("got %v %q", toks[0].Type, toks[0].Literal)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	sink := &recordingSink{}
	allTokens(`"unterminated`, sink)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestLexerLineComment(t *testing.T) {
	toks := allTokens("1 // this is ignored\n2", nil)
	if toks[0].Lexeme != "1" || toks[1].Lexeme != "2" {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerBlockComment(t *testing.T) {
	toks := allTokens("1 /* ignored\nacross lines */ 2", nil)
	if toks[0].Lexeme != "1" || toks[1].Lexeme != "2" {
		t.Fatalf("got %v", toks)
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	sink := &recordingSink{}
	allTokens("1 /* never closed", sink)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestLexerIllegalRunCoalesced(t *testing.T) {
	sink := &recordingSink{}
	toks := allTokens("1 @@@ 2", sink)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
	if toks[0].Lexeme != "1" || toks[1].Lexeme != "2" {
		t.Fatalf("got %v", toks)
	}
}
