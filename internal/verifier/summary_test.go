package verifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	reports := []*Report{
		{File: "z.sjava", Status: StatusValid},
		{File: "a.sjava", Status: StatusInvalid, Kind: KindSyntax},
		{File: "m.sjava", Status: StatusIOError, Kind: KindIO},
		{File: "b.sjava", Status: StatusValid},
	}

	s := NewSummary("root", reports, time.Second)
	require.Len(t, s.Reports, 4)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Valid)
	assert.Equal(t, 1, s.Invalid)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, "a.sjava", s.Reports[0].File)
	assert.Equal(t, "z.sjava", s.Reports[3].File)
	assert.Equal(t, "z.sjava", reports[0].File, "input slice must not be reordered")
	assert.Equal(t, StatusIOError, s.Status())
}

func TestSummary_Status(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusValid},
		{"all valid", []Status{StatusValid, StatusValid}, StatusValid},
		{"one invalid", []Status{StatusValid, StatusInvalid}, StatusInvalid},
		{"error wins", []Status{StatusInvalid, StatusIOError}, StatusIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reports []*Report
			for _, st := range tt.statuses {
				reports = append(reports, &Report{Status: st})
			}
			assert.Equal(t, tt.want, NewSummary(".", reports, 0).Status())
		})
	}
}
