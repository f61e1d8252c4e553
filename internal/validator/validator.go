// Package validator checks the semantics of a classified s-Java source.
//
// Validation runs in two passes over the classified lines. The first pass
// collects global variables and method signatures (so methods may be called
// before they are declared). The second pass walks every method body with a
// stack of scopes and checks declarations, assignments, calls, conditions
// and the placement of return statements. The first failure aborts.
package validator

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/pkg/model"
)

// SemanticError reports a well-formed line that breaks an s-Java rule
type SemanticError struct {
	Line   int
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Reason)
}

func errorf(line int, format string, args ...interface{}) *SemanticError {
	return &SemanticError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Validator holds the global scope and method table for one source file
type Validator struct {
	lines   []parser.ParsedLine
	global  *model.Scope
	methods map[string]*model.Method
}

// NewValidator creates a validator over classified lines
func NewValidator(lines []parser.ParsedLine) *Validator {
	return &Validator{
		lines:   lines,
		global:  model.NewScope(nil),
		methods: make(map[string]*model.Method),
	}
}

// Validate runs both passes
func Validate(lines []parser.ParsedLine) error {
	return NewValidator(lines).Validate()
}

// Validate runs the collection pass followed by the body pass
func (v *Validator) Validate() error {
	if err := v.collect(); err != nil {
		return err
	}
	log.Debug().
		Int("globals", v.global.Len()).
		Int("methods", len(v.methods)).
		Msg("collected declarations")

	return v.validateBodies()
}

// Methods returns the collected methods ordered by declaration line
func (v *Validator) Methods() []*model.Method {
	out := make([]*model.Method, 0, len(v.methods))
	for _, m := range v.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}
