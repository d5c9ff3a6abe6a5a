package builtins

import (
	"lox/interp"
	"lox/logging"
	"lox/parser"
	"lox/resolve"
	"lox/types"
)

// fullSink is what evalString needs from i.Sink(): the lexical/syntactic
// and compile-time Error/Warn methods parser.ErrorSink and resolve.ErrorSink
// require, on top of the RuntimeError interp.ErrorSink already guarantees.
// Every ErrorSink this module actually constructs (logging.Reporter, and
// the test-only recording sinks in conformance/runner.go and
// builtins/registry_test.go) implements all three, so the assertion below
// only fails for a hypothetical caller that built an Interpreter with a
// sink narrower than what eval() needs.
type fullSink interface {
	Error(line int, message string)
	Warn(line int, message string)
	RuntimeError(line int, message string)
}

// evalString lexes, parses, resolves, and interprets its string argument
// against the live interpreter: new globals it defines persist, and
// existing ones it reads or mutates are the same bindings the rest of the
// program sees. Errors in any phase are reported through the same sink the
// outer program itself reports through (interp.Interpreter.Sink()), not the
// package-global logging.Reporter, so a caller that built the Interpreter
// with its own sink (as the conformance runner and builtin tests do) still
// observes eval()'s internal parse/resolve errors. The call yields Nil
// rather than propagating a Go error, matching spec.md §4.6's "Errors ...
// are reported and Nil is returned."
func evalString(i *interp.Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	src, ok := args[0].(types.String)
	if !ok {
		return types.Result{}, types.NewRuntimeError(i.CallLine(), "eval expects a string argument.")
	}

	sink, ok := i.Sink().(fullSink)
	if !ok {
		sink = logging.Default()
	}

	p := parser.NewParser(string(src), sink)
	stmts := p.Parse()
	if p.HadError() {
		return types.Ok(types.NilValue), nil
	}

	r := resolve.New(sink)
	r.Resolve(stmts)
	if r.HadError() {
		return types.Ok(types.NilValue), nil
	}

	outcome := i.Interpret(stmts)
	if outcome.RuntimeErrored {
		return types.Ok(types.NilValue), nil
	}
	if outcome.Exited {
		return types.Exit(outcome.ExitStatus), nil
	}
	return types.Ok(outcome.Value), nil
}
