package interp

import (
	"fmt"
	"io"

	"lox/types"
)

// Environment is one scope frame: a name->value map plus an optional link
// to the frame it is nested inside. The global environment is the root
// (Enclosing == nil). Frames are shared by reference among every closure
// that captured them, which is what makes mutation inside a block visible
// to functions declared in it.
type Environment struct {
	values    map[string]types.Value
	Enclosing *Environment
}

// NewEnvironment creates a frame enclosed by enclosing (nil for the global
// frame).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]types.Value), Enclosing: enclosing}
}

// Define binds name to value in this frame, overwriting any existing
// binding. Redeclaration is rejected at compile time by the Resolver for
// local scopes; at the global scope redeclaration is allowed (see
// spec.md's documented var/let asymmetry), so Define simply overwrites
// rather than erroring — the one runtime behavior both cases share.
func (e *Environment) Define(name string, value types.Value) {
	e.values[name] = value
}

// Get walks the enclosing chain looking for name, starting at this frame.
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the enclosing chain looking for an existing binding of name
// and overwrites it in place. It reports false if name is not bound
// anywhere in the chain (the caller turns that into a RuntimeError, since
// Environment has no notion of source position).
func (e *Environment) Assign(name string, value types.Value) bool {
	for env := e; env != nil; env = env.Enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}

// Ancestor walks exactly depth Enclosing links out from this frame. The
// Resolver guarantees the frame at that distance exists and defines
// whatever name the caller is about to look up.
func (e *Environment) Ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt fetches name from exactly the frame depth scopes out.
func (e *Environment) GetAt(depth int, name string) (types.Value, bool) {
	v, ok := e.Ancestor(depth).values[name]
	return v, ok
}

// AssignAt assigns name in exactly the frame depth scopes out.
func (e *Environment) AssignAt(depth int, name string, value types.Value) {
	e.Ancestor(depth).values[name] = value
}

// Dump writes every binding visible from this frame to w, innermost frame
// first, one "name = value" pair per line. Used by the printEnv built-in.
func (e *Environment) Dump(w io.Writer) {
	depth := 0
	for env := e; env != nil; env = env.Enclosing {
		fmt.Fprintf(w, "-- scope %d --\n", depth)
		for name, value := range env.values {
			fmt.Fprintf(w, "%s = %s\n", name, types.Stringify(value))
		}
		depth++
	}
}
