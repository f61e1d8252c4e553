package model

import (
	"fmt"
	"strings"
)

// Method is a void s-Java method signature
type Method struct {
	Name   string
	Line   int // declaration line (1-based)
	params []*Variable
}

// NewMethod creates a method with no parameters
func NewMethod(name string, line int) *Method {
	return &Method{
		Name:   name,
		Line:   line,
		params: make([]*Variable, 0),
	}
}

// AddParam appends a parameter. Parameter names must be pairwise distinct.
func (m *Method) AddParam(p *Variable) error {
	for _, existing := range m.params {
		if existing.Name() == p.Name() {
			return fmt.Errorf("duplicate parameter name %s", p.Name())
		}
	}
	m.params = append(m.params, p)
	return nil
}

// Params returns the parameters in declaration order
func (m *Method) Params() []*Variable {
	return m.params
}

// Arity returns the number of parameters
func (m *Method) Arity() int {
	return len(m.params)
}

// CheckArgs validates argument types against the parameter list
func (m *Method) CheckArgs(args []Type) error {
	if len(args) != len(m.params) {
		return fmt.Errorf("method %s expects %d arguments, got %d", m.Name, len(m.params), len(args))
	}
	for i, p := range m.params {
		if !p.Accepts(args[i]) {
			return fmt.Errorf("method %s argument %d: cannot pass %s as %s", m.Name, i+1, args[i], p.Type())
		}
	}
	return nil
}

// Signature renders the method as it would be declared
func (m *Method) Signature() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("void %s(%s)", m.Name, strings.Join(parts, ", "))
}
