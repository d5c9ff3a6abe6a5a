package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"lox/builtins"
	"lox/interp"
	"lox/parser"
	"lox/resolve"
)

// sink collects every error/warning reported during one run instead of
// printing it, so Run can compare against Expectation.Error without
// involving a real logging.Reporter.
type sink struct {
	messages []string
}

func (s *sink) Error(line int, message string)        { s.messages = append(s.messages, message) }
func (s *sink) Warn(line int, message string)          { s.messages = append(s.messages, message) }
func (s *sink) RuntimeError(line int, message string) { s.messages = append(s.messages, message) }

// Result is the outcome of running one TestCase.
type Result struct {
	Stdout   string
	Messages []string
}

// Run lexes, parses, resolves, and interprets tc.Code in a fresh
// Interpreter (globals and built-ins only, no state left over from any
// other case) and returns what it printed and any error/warning messages
// raised along the way.
func Run(tc TestCase) Result {
	s := &sink{}

	p := parser.NewParser(tc.Code, s)
	stmts := p.Parse()

	if !p.HadError() {
		r := resolve.New(s)
		r.Resolve(stmts)

		if !r.HadError() {
			var buf bytes.Buffer
			i := interp.New(&buf, s, 0, "")
			builtins.Install(i)
			i.Interpret(stmts)
			return Result{Stdout: buf.String(), Messages: s.messages}
		}
	}

	return Result{Messages: s.messages}
}

// Check compares a Result against tc.Expect, returning a non-nil error
// describing the first mismatch found.
func Check(tc TestCase, got Result) error {
	if tc.Expect.Error != "" {
		found := false
		for _, m := range got.Messages {
			if strings.Contains(m, tc.Expect.Error) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected an error containing %q, got messages %v", tc.Expect.Error, got.Messages)
		}
		if len(tc.Expect.Stdout) == 0 {
			return nil
		}
	} else if len(got.Messages) != 0 {
		return fmt.Errorf("unexpected errors/warnings: %v", got.Messages)
	}

	wantStdout := strings.Join(tc.Expect.Stdout, "\n")
	if len(tc.Expect.Stdout) > 0 {
		wantStdout += "\n"
	}
	if got.Stdout != wantStdout {
		return fmt.Errorf("stdout mismatch:\n got: %q\nwant: %q", got.Stdout, wantStdout)
	}
	return nil
}
