package types

// ControlFlow represents the non-local-exit state produced by evaluating a
// statement or expression. Runtime errors are carried separately as Go
// errors (see RuntimeError); this type exists purely for the two control
// signals the language defines: return and exit. Neither is ever reported
// as an error.
type ControlFlow int

const (
	FlowNormal ControlFlow = iota // normal execution, Val holds the value
	FlowReturn                    // a return statement unwound to here
	FlowExit                      // the exit() builtin unwound to here
)

// Result is the outcome of evaluating an expression or executing a
// statement: either a plain value, a return-in-progress, or an exit
// signal. It is threaded explicitly through evaluation rather than raised
// as a panic, per the interpreter's non-local-exit design.
type Result struct {
	Val        Value
	Flow       ControlFlow
	ExitStatus string
}

// Ok wraps a normally produced value.
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// Return creates a Result carrying a return statement's value.
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Exit creates a Result signalling that exit() was called.
func Exit(status string) Result {
	return Result{Flow: FlowExit, ExitStatus: status}
}

// IsNormal reports whether this is ordinary, non-unwinding execution.
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsReturn reports whether a return statement is unwinding through this
// point.
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsExit reports whether exit() is unwinding through this point.
func (r Result) IsExit() bool {
	return r.Flow == FlowExit
}
