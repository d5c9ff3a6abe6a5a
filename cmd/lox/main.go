// Command lox is the CLI/REPL driver for the tree-walking interpreter: it
// wires together the Lexer/Parser, Resolver, and Interpreter packages,
// owns the process's exit code, and hosts the line-buffered REPL loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"lox/builtins"
	"lox/config"
	"lox/interp"
	"lox/logging"
	"lox/parser"
	"lox/resolve"
)

// Exit codes, per spec.md §6.
const (
	exitNormal       = 0
	exitFileNotFound = 42
	exitBadUsage     = 64
	exitCompileError = 65
	exitRuntimeError = 70
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	logLevelFlag := fs.String("log-level", "", "minimum log level: error, warning, info, debug")
	maxCallDepthFlag := fs.Int("max-call-depth", 0, "maximum call recursion depth (0 = use config/default)")
	evalExpr := fs.String("eval", "", "evaluate a single expression and exit")

	if err := fs.Parse(args); err != nil {
		return exitBadUsage
	}

	positional := fs.Args()
	if len(positional) > 1 {
		fmt.Fprintln(os.Stderr, "usage: lox [-config path] [-log-level level] [-max-call-depth n] [-eval expr] [script]")
		return exitBadUsage
	}
	if len(positional) == 1 && *evalExpr != "" {
		fmt.Fprintln(os.Stderr, "usage: lox: a script and -eval are mutually exclusive")
		return exitBadUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lox: could not read config '%s': %v\n", *configPath, err)
			return exitBadUsage
		}
		cfg = loaded
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
	if *maxCallDepthFlag > 0 {
		cfg.MaxCallDepth = *maxCallDepthFlag
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "lox: unknown log level '%s'\n", cfg.LogLevel)
		return exitBadUsage
	}
	reporter := logging.Init(os.Stderr, level)

	switch {
	case *evalExpr != "":
		return runEval(*evalExpr, reporter, cfg.MaxCallDepth)
	case len(positional) == 1:
		return runFile(positional[0], reporter, cfg.MaxCallDepth)
	default:
		return runREPL(reporter, cfg.MaxCallDepth)
	}
}

func newInterpreter(reporter *logging.Reporter, maxCallDepth int, scriptDir string) *interp.Interpreter {
	i := interp.New(os.Stdout, reporter, maxCallDepth, scriptDir)
	builtins.Install(i)
	return i
}

// runFile lexes, parses, resolves, and interprets the entire file as one
// program, returning the process exit code spec.md §6 specifies.
func runFile(path string, reporter *logging.Reporter, maxCallDepth int) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: could not open '%s': %v\n", path, err)
		return exitFileNotFound
	}

	scriptDir := filepath.Dir(path)
	i := newInterpreter(reporter, maxCallDepth, scriptDir)

	stmts, compileErr := parseAndResolve(string(source), reporter)
	if compileErr {
		return exitCompileError
	}

	outcome := i.Interpret(stmts)
	if outcome.RuntimeErrored {
		return exitRuntimeError
	}
	return exitNormal
}

// runEval evaluates a single expression/program passed on the command
// line, sharing the same construction path as file mode (spec_full.md
// §12: carried over from the original implementation's "-eval" flag).
func runEval(source string, reporter *logging.Reporter, maxCallDepth int) int {
	i := newInterpreter(reporter, maxCallDepth, "")

	stmts, compileErr := parseAndResolve(source, reporter)
	if compileErr {
		return exitCompileError
	}

	outcome := i.Interpret(stmts)
	if outcome.RuntimeErrored {
		return exitRuntimeError
	}
	return exitNormal
}

// runREPL is the line-buffered interactive loop. Each line is parsed,
// resolved, and interpreted as its own call to Interpret, but globals and
// closures persist across lines since they all share one Interpreter.
// Every line's statements are appended to history so the AST they contain
// — and anything it closes over — stays reachable for as long as the
// REPL runs, even after a later line shadows the same source text.
func runREPL(reporter *logging.Reporter, maxCallDepth int) int {
	i := newInterpreter(reporter, maxCallDepth, "")
	var history [][]parser.Stmt

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return exitNormal
		}
		line := scanner.Text()

		stmts, compileErr := parseAndResolve(line, reporter)
		if compileErr {
			continue
		}
		history = append(history, stmts)

		outcome := i.Interpret(stmts)
		if outcome.Exited {
			return exitNormal
		}
	}
}

// parseAndResolve runs the Lexer/Parser and Resolver stages, reporting
// through sink, and returns whether a compile-time error (lexical,
// syntactic, or resolution) occurred — in which case the caller must not
// interpret the result.
func parseAndResolve(source string, sink *logging.Reporter) (stmts []parser.Stmt, hadError bool) {
	p := parser.NewParser(source, sink)
	stmts = p.Parse()
	if p.HadError() {
		return stmts, true
	}

	r := resolve.New(sink)
	r.Resolve(stmts)
	if r.HadError() {
		return stmts, true
	}

	return stmts, false
}
