package emitter

import (
	"encoding/json"
	"io"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// JSONEmitter writes the summary as indented JSON
type JSONEmitter struct{}

func (e *JSONEmitter) Name() string          { return "json" }
func (e *JSONEmitter) FileExtension() string { return ".json" }

func (e *JSONEmitter) Emit(w io.Writer, summary *verifier.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
