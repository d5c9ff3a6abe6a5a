package interp

import "lox/types"

// Class is a runtime class: an optional superclass reference and three
// independent name→Function tables. Method/getter/unbound lookup all walk
// the superclass chain the same way, so a subclass can shadow any one of
// them without touching the others.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
	Unbounds   map[string]*Function
	Getters    map[string]*Function
}

func NewClass(name string, superclass *Class) *Class {
	return &Class{
		Name:       name,
		Superclass: superclass,
		Methods:    make(map[string]*Function),
		Unbounds:   make(map[string]*Function),
		Getters:    make(map[string]*Function),
	}
}

func (c *Class) TypeName() string { return "callable" }
func (c *Class) String() string   { return "<class " + c.Name + ">" }

func (c *Class) Equal(other types.Value) bool {
	o, ok := other.(*Class)
	return ok && o == c
}

func (c *Class) Truthy() bool { return true }

// FindMethod walks the superclass chain for a method named name.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for class := c; class != nil; class = class.Superclass {
		if fn, ok := class.Methods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// FindUnbound walks the superclass chain for an unbound member named name.
func (c *Class) FindUnbound(name string) (*Function, bool) {
	for class := c; class != nil; class = class.Superclass {
		if fn, ok := class.Unbounds[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// FindGetter walks the superclass chain for a getter named name.
func (c *Class) FindGetter(name string) (*Function, bool) {
	for class := c; class != nil; class = class.Superclass {
		if fn, ok := class.Getters[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Arity is the arity of "init" if one exists (inherited or not), else 0:
// a class with no constructor is called with no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance and, if the class defines (or
// inherits) an "init" method, binds and runs it before returning the
// instance itself — a constructor's return value is always discarded in
// favor of "this" (see Function.Call).
func (c *Class) Call(i *Interpreter, args []types.Value) (types.Result, *types.RuntimeError) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		result, rerr := bound.Call(i, args)
		if rerr != nil || result.IsExit() {
			return result, rerr
		}
		return types.Ok(instance), nil
	}
	return types.Ok(instance), nil
}

// Instance is a class instance: a back-reference to its class and a
// dynamically-growing field table.
type Instance struct {
	Class  *Class
	Fields map[string]types.Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]types.Value)}
}

func (inst *Instance) TypeName() string { return "instance" }
func (inst *Instance) String() string   { return "<instance " + inst.Class.Name + ">" }

func (inst *Instance) Equal(other types.Value) bool {
	o, ok := other.(*Instance)
	return ok && o == inst
}

func (inst *Instance) Truthy() bool { return true }
