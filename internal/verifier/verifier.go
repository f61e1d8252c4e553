// Package verifier runs the full s-Java pipeline on one source: file checks,
// line classification and semantic validation, and turns the outcome into
// a status category and a report.
package verifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/internal/validator"
)

// Extension is the required source file extension
const Extension = ".sjava"

// Report is the outcome of one verification
type Report struct {
	ID        uuid.UUID     `json:"id" yaml:"id"`
	File      string        `json:"file" yaml:"file"`
	Status    Status        `json:"status" yaml:"status"`
	Kind      Kind          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Line      int           `json:"line,omitempty" yaml:"line,omitempty"`
	Message   string        `json:"message,omitempty" yaml:"message,omitempty"`
	Lines     int           `json:"lines" yaml:"lines"`
	Methods   []string      `json:"methods,omitempty" yaml:"methods,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CheckedAt time.Time     `json:"checked_at" yaml:"checked_at"`
}

// Valid reports whether the source was accepted
func (r *Report) Valid() bool {
	return r.Status == StatusValid
}

// Diagnostic renders the failure the way it is written to stderr
func (r *Report) Diagnostic() string {
	if r.Kind == KindNone {
		return ""
	}
	return fmt.Sprintf("%s: %s", r.Kind.Label(), r.Message)
}

// Verifier checks s-Java sources. It holds no per-file state and is safe
// to share between goroutines.
type Verifier struct {
	parser *parser.Parser
}

// NewVerifier creates a verifier
func NewVerifier() *Verifier {
	return &Verifier{parser: parser.NewParser()}
}

// CheckPath validates the path before any reading: extension, existence,
// regular file, readable.
func CheckPath(path string) error {
	if !strings.HasSuffix(path, Extension) {
		return usageErrorf("file must have %s extension", Extension)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileErrorf("file does not exist: %s", path)
		}
		return fileErrorf("cannot access file: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fileErrorf("not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fileErrorf("cannot read file: %s", path)
	}
	return f.Close()
}

// VerifyFile runs the pipeline on a file and returns its report
func (v *Verifier) VerifyFile(ctx context.Context, path string) *Report {
	return v.run(path, func(r *Report) error {
		if err := CheckPath(path); err != nil {
			return err
		}
		parsed, err := v.parser.ParseFile(ctx, path)
		if err != nil {
			return err
		}
		return v.validate(r, parsed)
	})
}

// VerifySource runs the pipeline on in-memory source. name is reported
// as the file but is not checked for the extension.
func (v *Verifier) VerifySource(ctx context.Context, name string, src io.Reader) *Report {
	return v.run(name, func(r *Report) error {
		parsed, err := v.parser.ParseContent(ctx, name, src)
		if err != nil {
			return err
		}
		return v.validate(r, parsed)
	})
}

// Classify exposes the classifier for tooling that wants the line kinds
func (v *Verifier) Classify(ctx context.Context, path string) (*parser.ParsedFile, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	return v.parser.ParseFile(ctx, path)
}

// ClassifySource classifies in-memory source without validating it
func (v *Verifier) ClassifySource(ctx context.Context, name string, src io.Reader) (*parser.ParsedFile, error) {
	return v.parser.ParseContent(ctx, name, src)
}

func (v *Verifier) validate(r *Report, parsed *parser.ParsedFile) error {
	r.Lines = len(parsed.Lines)

	val := validator.NewValidator(parsed.Lines)
	if err := val.Validate(); err != nil {
		return err
	}
	for _, m := range val.Methods() {
		r.Methods = append(r.Methods, m.Signature())
	}
	return nil
}

func (v *Verifier) run(file string, fn func(*Report) error) (report *Report) {
	start := time.Now()
	report = &Report{
		ID:        uuid.New(),
		File:      file,
		CheckedAt: start.UTC(),
	}

	defer func() {
		if rec := recover(); rec != nil {
			report.Kind = KindInternal
			report.Status = KindInternal.Status()
			report.Message = fmt.Sprint(rec)
		}
		report.Duration = time.Since(start)

		log.Debug().
			Str("file", file).
			Int("status", int(report.Status)).
			Str("kind", string(report.Kind)).
			Dur("duration", report.Duration).
			Msg("verification complete")
	}()

	err := fn(report)
	report.Kind = Classify(err)
	report.Status = report.Kind.Status()
	if err != nil {
		report.Message = err.Error()
		report.Line = LineOf(err)
	}
	return report
}

// DisplayName shortens a path relative to root for reports
func DisplayName(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
