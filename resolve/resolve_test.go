package resolve

import (
	"testing"

	"lox/parser"
)

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

func resolveSource(t *testing.T, src string) ([]parser.Stmt, *recordingSink) {
	t.Helper()
	p := parser.NewParser(src, nil)
	stmts := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse error in %q", src)
	}
	sink := &recordingSink{}
	r := New(sink)
	r.Resolve(stmts)
	return stmts, sink
}

func TestResolveGlobalVariableHasNoDepth(t *testing.T) {
	stmts, sink := resolveSource(t, `var a = 1; a;`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	es := stmts[1].(*parser.ExprStmt)
	v := es.Expression.(*parser.VariableExpr)
	if v.Depth != parser.NoDepth {
		t.Errorf("got depth %d, want NoDepth", v.Depth)
	}
}

func TestResolveLocalVariableDepth(t *testing.T) {
	stmts, sink := resolveSource(t, `{ var a = 1; { a; } }`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	outer := stmts[0].(*parser.BlockStmt)
	inner := outer.Statements[1].(*parser.BlockStmt)
	es := inner.Statements[0].(*parser.ExprStmt)
	v := es.Expression.(*parser.VariableExpr)
	if v.Depth != 1 {
		t.Errorf("got depth %d, want 1", v.Depth)
	}
}

func TestResolveSelfInitializationIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `{ var a = a; }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveRedeclarationInSameLocalScopeIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `{ var a = 1; var a = 2; }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveGlobalRedeclarationIsAllowed(t *testing.T) {
	_, sink := resolveSource(t, `var a = 1; var a = 2;`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors for global redeclaration: %v", sink.errors)
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `return 1;`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveReturnValueInConstructorIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `class C { init() { return 1; } }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveInitMethodIsRetaggedConstructor(t *testing.T) {
	stmts, sink := resolveSource(t, `class C { init() { } }`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	class := stmts[0].(*parser.ClassStmt)
	if class.Methods[0].Kind != parser.KindConstructor {
		t.Errorf("got kind %v, want KindConstructor", class.Methods[0].Kind)
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `fun f() { return this; } `)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveThisInUnboundMemberIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `class C { unbound f() { return this; } }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, sink := resolveSource(t, `class C { f() { return super.f(); } }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveSuperclassCannotEqualClassName(t *testing.T) {
	_, sink := resolveSource(t, `class C < C { }`)
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestResolveSuperIsUnboundContextFlag(t *testing.T) {
	stmts, sink := resolveSource(t, `
		class A { unbound f() { return 1; } }
		class B < A { unbound g() { return super.f(); } }
	`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	classB := stmts[1].(*parser.ClassStmt)
	body := classB.Methods[0].Body
	ret := body[0].(*parser.ReturnStmt)
	call := ret.Value.(*parser.CallExpr)
	super := call.Callee.(*parser.SuperExpr)
	if !super.IsUnboundContext {
		t.Errorf("got IsUnboundContext = false, want true")
	}
}

func TestResolveGetterWithNoReturnWarns(t *testing.T) {
	_, sink := resolveSource(t, `class C { area { var x = 1; } }`)
	if len(sink.warns) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(sink.warns), sink.warns)
	}
}

func TestResolveShadowingScenario(t *testing.T) {
	// spec.md §8 scenario 2: a function declared before a shadowing local
	// resolves the outer/global name, not the later local.
	stmts, sink := resolveSource(t, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "local";
			show();
		}
	`)
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	block := stmts[1].(*parser.BlockStmt)
	fnStmt := block.Statements[0].(*parser.FunctionStmt)
	printStmt := fnStmt.Body[0].(*parser.PrintStmt)
	v := printStmt.Expression.(*parser.VariableExpr)
	if v.Depth != parser.NoDepth {
		t.Errorf("got depth %d, want NoDepth (resolves to global)", v.Depth)
	}
}
