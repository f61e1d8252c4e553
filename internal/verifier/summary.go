package verifier

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Summary aggregates the reports of a batch run
type Summary struct {
	RunID    uuid.UUID     `json:"run_id" yaml:"run_id"`
	Root     string        `json:"root" yaml:"root"`
	Total    int           `json:"total" yaml:"total"`
	Valid    int           `json:"valid" yaml:"valid"`
	Invalid  int           `json:"invalid" yaml:"invalid"`
	Errors   int           `json:"errors" yaml:"errors"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Reports  []*Report     `json:"reports" yaml:"reports"`
}

// NewSummary counts reports per status. Reports are sorted by file so the
// output does not depend on completion order.
func NewSummary(root string, reports []*Report, elapsed time.Duration) *Summary {
	sorted := make([]*Report, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].File < sorted[j].File })

	s := &Summary{
		RunID:    uuid.New(),
		Root:     root,
		Total:    len(sorted),
		Duration: elapsed,
		Reports:  sorted,
	}
	for _, r := range sorted {
		switch r.Status {
		case StatusValid:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		default:
			s.Errors++
		}
	}
	return s
}

// Status is the worst status in the batch
func (s *Summary) Status() Status {
	switch {
	case s.Errors > 0:
		return StatusIOError
	case s.Invalid > 0:
		return StatusInvalid
	}
	return StatusValid
}
