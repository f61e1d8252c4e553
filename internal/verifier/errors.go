package verifier

import (
	"errors"
	"fmt"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/internal/validator"
)

// Status is the number printed on stdout for a verification
type Status int

const (
	StatusValid   Status = 0
	StatusInvalid Status = 1
	StatusIOError Status = 2
)

// Kind classifies why a verification failed
type Kind string

const (
	KindNone     Kind = ""
	KindUsage    Kind = "usage"
	KindFile     Kind = "file"
	KindIO       Kind = "io"
	KindSyntax   Kind = "syntax"
	KindSemantic Kind = "semantic"
	KindInternal Kind = "internal"
)

// Status maps an error kind onto its status category
func (k Kind) Status() Status {
	switch k {
	case KindNone:
		return StatusValid
	case KindSyntax, KindSemantic:
		return StatusInvalid
	default:
		return StatusIOError
	}
}

// Label is the prefix used when the error is written to stderr
func (k Kind) Label() string {
	switch k {
	case KindSyntax:
		return "Syntax Error"
	case KindSemantic:
		return "Validation Error"
	case KindIO:
		return "IO Error"
	case KindInternal:
		return "Unexpected Error"
	default:
		return "Error"
	}
}

// Error is a usage, file or read error raised outside analysis
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...interface{}) error {
	return &Error{Kind: KindUsage, Err: fmt.Errorf(format, args...)}
}

func fileErrorf(format string, args ...interface{}) error {
	return &Error{Kind: KindFile, Err: fmt.Errorf(format, args...)}
}

// Classify returns the kind of err; nil is KindNone and anything unknown
// is treated as an I/O failure
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var se *parser.SyntaxError
	if errors.As(err, &se) {
		return KindSyntax
	}
	var ve *validator.SemanticError
	if errors.As(err, &ve) {
		return KindSemantic
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}

// LineOf returns the source line an error points at, or 0
func LineOf(err error) int {
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		return se.Line
	}
	var ve *validator.SemanticError
	if errors.As(err, &ve) {
		return ve.Line
	}
	return 0
}
