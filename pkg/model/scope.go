package model

import "fmt"

// Scope is a node in the lexical scope tree. Variables are held by pointer
// so that an assignment resolved through a child scope updates the variable
// owned by an ancestor.
type Scope struct {
	parent *Scope
	vars   map[string]*Variable
}

// NewScope creates a scope below parent; a nil parent makes a global scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		vars:   make(map[string]*Variable),
	}
}

// Parent returns the enclosing scope, nil for the global scope
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Declare binds v in this scope. Shadowing an ancestor binding is allowed,
// redeclaring a name already bound here is not.
func (s *Scope) Declare(v *Variable) error {
	if _, exists := s.vars[v.Name()]; exists {
		return fmt.Errorf("variable %s already declared in this scope", v.Name())
	}
	s.vars[v.Name()] = v
	return nil
}

// Lookup finds a variable bound directly in this scope
func (s *Scope) Lookup(name string) (*Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Resolve finds the nearest binding of name walking up the parent chain
func (s *Scope) Resolve(name string) (*Variable, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Len returns the number of variables bound directly in this scope
func (s *Scope) Len() int {
	return len(s.vars)
}
