package model

import "fmt"

// Variable is a named, typed storage slot (global, local or parameter).
// Only the initialization flag changes after construction.
type Variable struct {
	name        string
	typ         Type
	final       bool
	initialized bool
}

// NewVariable creates a variable. A final variable must start initialized.
func NewVariable(name string, typ Type, final, initialized bool) (*Variable, error) {
	if final && !initialized {
		return nil, fmt.Errorf("final variable %s must be initialized", name)
	}
	return &Variable{
		name:        name,
		typ:         typ,
		final:       final,
		initialized: initialized,
	}, nil
}

// Name returns the variable name
func (v *Variable) Name() string { return v.name }

// Type returns the declared type
func (v *Variable) Type() Type { return v.typ }

// IsFinal reports whether the variable was declared final
func (v *Variable) IsFinal() bool { return v.final }

// IsInitialized reports whether a value has been assigned
func (v *Variable) IsInitialized() bool { return v.initialized }

// MarkInitialized records an assignment. The flag never goes back to false.
func (v *Variable) MarkInitialized() {
	v.initialized = true
}

// Accepts reports whether a value of type src can be assigned to v
func (v *Variable) Accepts(src Type) bool {
	return v.typ.Accepts(src)
}

func (v *Variable) String() string {
	prefix := ""
	if v.final {
		prefix = "final "
	}
	return fmt.Sprintf("%s%s %s", prefix, v.typ, v.name)
}
