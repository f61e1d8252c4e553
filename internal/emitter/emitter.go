// Package emitter renders verification summaries in the supported report formats
package emitter

import (
	"fmt"
	"io"
	"sort"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// Emitter writes a batch summary in one format
type Emitter interface {
	// Name returns the format name (e.g., "text", "json", "yaml")
	Name() string

	// FileExtension returns the extension used when the report is saved
	FileExtension() string

	// Emit writes the whole summary
	Emit(w io.Writer, summary *verifier.Summary) error
}

// Registry holds all available emitters
type Registry struct {
	emitters map[string]Emitter
}

// NewRegistry creates a new emitter registry with all built-in emitters
func NewRegistry() *Registry {
	r := &Registry{
		emitters: make(map[string]Emitter),
	}

	r.Register(&TextEmitter{})
	r.Register(&JSONEmitter{})
	r.Register(&YAMLEmitter{})

	return r
}

// Register adds an emitter to the registry
func (r *Registry) Register(e Emitter) {
	r.emitters[e.Name()] = e
}

// Get returns an emitter by name
func (r *Registry) Get(name string) (Emitter, error) {
	e, ok := r.emitters[name]
	if !ok {
		return nil, fmt.Errorf("emitter not found: %s", name)
	}
	return e, nil
}

// List returns all registered emitter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.emitters))
	for name := range r.emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
