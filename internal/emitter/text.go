package emitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// TextEmitter writes a human readable report, one line per file
type TextEmitter struct{}

func (e *TextEmitter) Name() string          { return "text" }
func (e *TextEmitter) FileExtension() string { return ".txt" }

func (e *TextEmitter) Emit(w io.Writer, summary *verifier.Summary) error {
	var b strings.Builder

	for _, r := range summary.Reports {
		b.WriteString(fmt.Sprintf("%d %s", r.Status, r.File))
		if !r.Valid() {
			b.WriteString(fmt.Sprintf("  %s", r.Diagnostic()))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d files: %d valid, %d invalid, %d errors (%s)\n",
		summary.Total, summary.Valid, summary.Invalid, summary.Errors, summary.Duration))

	_, err := io.WriteString(w, b.String())
	return err
}
