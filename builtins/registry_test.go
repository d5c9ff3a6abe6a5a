package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lox/interp"
	"lox/parser"
	"lox/resolve"
)

type recordingSink struct {
	errors []string
}

func (s *recordingSink) Error(line int, message string)        { s.errors = append(s.errors, message) }
func (s *recordingSink) Warn(line int, message string)          {}
func (s *recordingSink) RuntimeError(line int, message string) { s.errors = append(s.errors, message) }

func runWithBuiltins(t *testing.T, src string, scriptDir string) (string, *recordingSink, interp.Outcome) {
	t.Helper()
	sink := &recordingSink{}

	p := parser.NewParser(src, sink)
	stmts := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors for %q: %v", src, sink.errors)
	}

	r := resolve.New(sink)
	r.Resolve(stmts)
	if r.HadError() {
		t.Fatalf("unexpected resolve errors for %q: %v", src, sink.errors)
	}

	var buf bytes.Buffer
	i := interp.New(&buf, sink, 0, scriptDir)
	Install(i)
	outcome := i.Interpret(stmts)
	return buf.String(), sink, outcome
}

func TestClockReturnsANumber(t *testing.T) {
	out, sink, outcome := runWithBuiltins(t, `print clock() > 0;`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "true")
	}
}

func TestExitUnwindsWithoutRuntimeError(t *testing.T) {
	out, _, outcome := runWithBuiltins(t, `print "before"; exit(); print "after";`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("exit() must not be reported as a runtime error")
	}
	if !outcome.Exited {
		t.Fatalf("expected Outcome.Exited to be true")
	}
	if strings.Contains(out, "after") {
		t.Errorf("statements after exit() ran: %q", out)
	}
}

func TestAssertFailureRaisesRuntimeErrorWithMessage(t *testing.T) {
	_, sink, outcome := runWithBuiltins(t, `assert(1 == 2, "one is not two");`, "")
	if !outcome.RuntimeErrored {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(sink.errors[0], "one is not two") {
		t.Errorf("got error %q, want it to carry the assert message", sink.errors[0])
	}
}

func TestAssertSuccessIsANoOp(t *testing.T) {
	_, sink, outcome := runWithBuiltins(t, `assert(1 == 1, "unreachable");`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
}

func TestSetLogLevelRejectsUnknownLevel(t *testing.T) {
	_, sink, outcome := runWithBuiltins(t, `setLogLevel("not a level");`, "")
	if !outcome.RuntimeErrored {
		t.Fatalf("expected a runtime error")
	}
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestIncludeStrReadsFileRelativeToScriptDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.txt"), []byte("hello from disk"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, sink, outcome := runWithBuiltins(t, `print includeStr("data.txt");`, dir)
	if outcome.RuntimeErrored {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	if strings.TrimSpace(out) != "hello from disk" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "hello from disk")
	}
}

func TestIncludeStrMissingFileIsRuntimeError(t *testing.T) {
	_, sink, outcome := runWithBuiltins(t, `includeStr("does-not-exist.txt");`, t.TempDir())
	if !outcome.RuntimeErrored {
		t.Fatalf("expected a runtime error")
	}
	if len(sink.errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.errors), sink.errors)
	}
}

func TestEvalRunsAgainstLiveInterpreterState(t *testing.T) {
	out, sink, outcome := runWithBuiltins(t, `
		var x = 1;
		eval("x = x + 41;");
		print x;
	`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "42")
	}
}

func TestEvalReturnsLastExpressionValue(t *testing.T) {
	out, sink, outcome := runWithBuiltins(t, `print eval("1 + 2;");`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "3")
	}
}

func TestEvalErrorYieldsNilRatherThanPropagating(t *testing.T) {
	out, sink, outcome := runWithBuiltins(t, `print eval("1 +;");`, "")
	if outcome.RuntimeErrored {
		t.Fatalf("a parse error inside eval() must not fail the outer program: %v", sink.errors)
	}
	if strings.TrimSpace(out) != "nil" {
		t.Errorf("got %q, want %q", strings.TrimSpace(out), "nil")
	}
}
