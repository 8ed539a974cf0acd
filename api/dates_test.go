package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
		want string
	}{
		{name: "iso", in: "2026-09-01", ok: true, want: "2026-09-01"},
		{name: "day first slashes", in: "25/12/2026", ok: true, want: "2026-12-25"},
		{name: "month first slashes", in: "12/25/2026", ok: true, want: "2026-12-25"},
		{name: "day first dashes", in: "25-12-2026", ok: true, want: "2026-12-25"},
		{name: "surrounding whitespace", in: "  2026-09-01 ", ok: true, want: "2026-09-01"},
		{name: "empty", in: "", ok: false},
		{name: "dash sentinel", in: "-", ok: false},
		{name: "none sentinel", in: "None", ok: false},
		{name: "garbage", in: "next tuesday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDate(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, d.Format("2006-01-02"))
			}
		})
	}
}

func TestDatesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{name: "clear overlap", startA: "2026-09-01", endA: "2026-09-05", startB: "2026-09-03", endB: "2026-09-08", want: true},
		{name: "contained", startA: "2026-09-01", endA: "2026-09-10", startB: "2026-09-03", endB: "2026-09-05", want: true},
		{name: "shared endpoint", startA: "2026-09-01", endA: "2026-09-05", startB: "2026-09-05", endB: "2026-09-08", want: true},
		{name: "disjoint", startA: "2026-09-01", endA: "2026-09-05", startB: "2026-09-06", endB: "2026-09-08", want: false},
		{name: "mixed layouts", startA: "2026-09-01", endA: "05/09/2026", startB: "2026-09-03", endB: "2026-09-08", want: true},
		{name: "unparseable endpoint", startA: "2026-09-01", endA: "TBD", startB: "2026-09-03", endB: "2026-09-08", want: false},
		{name: "empty endpoint", startA: "", endA: "2026-09-05", startB: "2026-09-03", endB: "2026-09-08", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatesOverlap(tt.startA, tt.endA, tt.startB, tt.endB))
		})
	}
}

func TestMissionDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{name: "five days inclusive", start: "2026-09-01", end: "2026-09-05", want: 5},
		{name: "single day", start: "2026-09-01", end: "2026-09-01", want: 1},
		{name: "reversed floors at one", start: "2026-09-05", end: "2026-09-01", want: 1},
		{name: "unparseable start", start: "soon", end: "2026-09-05", want: 0},
		{name: "empty end", start: "2026-09-01", end: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissionDays(tt.start, tt.end))
		})
	}
}

func TestPilotCost(t *testing.T) {
	assert.Equal(t, 60000.0, PilotCost(12000, "2026-09-01", "2026-09-05"))
	assert.Equal(t, 12000.0, PilotCost(12000, "2026-09-01", "2026-09-01"))
	assert.Equal(t, 0.0, PilotCost(12000, "", "2026-09-05"))
}
