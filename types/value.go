// Package types defines the runtime value model shared by the parser,
// resolver, and interpreter.
package types

import "strconv"

// Value is the interface every runtime value implements. Primitives
// (Number, String, Bool, Nil) are value-copied on assignment and compare
// structurally. Callable and Instance (defined in package interp, which
// implements this interface) are shared references and compare by
// identity.
type Value interface {
	TypeName() string
	String() string
	Equal(other Value) bool
	Truthy() bool
}

// Number is an IEEE-754 double.
type Number float64

func (n Number) TypeName() string { return "number" }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

func (n Number) Truthy() bool { return true }

// String is UTF-8 text compared bytewise for relational operators.
type String string

func (s String) TypeName() string { return "string" }
func (s String) String() string   { return string(s) }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (s String) Truthy() bool { return true }

// Bool is a boolean. Only Nil and false are falsy: Truthy simply returns
// the underlying bool, so Bool(false) is falsy and Bool(true) truthy.
type Bool bool

func (b Bool) TypeName() string { return "bool" }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

func (b Bool) Truthy() bool { return bool(b) }

// Nil is the singleton unit value.
type Nil struct{}

func (Nil) TypeName() string { return "nil" }
func (Nil) String() string   { return "nil" }

func (Nil) Equal(other Value) bool {
	_, ok := other.(Nil)
	return ok
}

func (Nil) Truthy() bool { return false }

// NilValue is the one Nil instance; Nil carries no state so any Nil{}
// would do, but a shared value reads better at call sites.
var NilValue Value = Nil{}

// Stringify renders v the way the "print" statement and string
// concatenation do. It is a free function (rather than relying solely on
// Value.String) so built-ins and the interpreter share one formatting
// rule independent of how a given Value implements String().
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// Truthy reports v's truthiness per the language rule: only Nil and false
// are falsy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	return v.Truthy()
}
