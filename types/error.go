package types

import "fmt"

// RuntimeError is raised by the Interpreter for type mismatches, undefined
// names, illegal operators, and the other failures enumerated in the
// component design. It carries the source line of the offending token so
// the driver can format "[line N] Error: <message>" without the types
// package needing to know about tokens.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// NewRuntimeError constructs a RuntimeError at line with the given
// formatted message.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
