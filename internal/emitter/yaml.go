package emitter

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// YAMLEmitter writes the summary as YAML
type YAMLEmitter struct{}

func (e *YAMLEmitter) Name() string          { return "yaml" }
func (e *YAMLEmitter) FileExtension() string { return ".yaml" }

func (e *YAMLEmitter) Emit(w io.Writer, summary *verifier.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return enc.Close()
}
