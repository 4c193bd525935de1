package solarterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTermsOfYear_ReferencePath verifies the exact table is used for covered
// years and tagged accordingly.
func TestTermsOfYear_ReferencePath(t *testing.T) {
	terms := TermsOfYear(2026)
	require.Len(t, terms, Count)

	for i, e := range terms {
		assert.Equal(t, Term(i), e.Term)
		assert.Equal(t, 2026, e.Year)
		assert.Equal(t, SourceReference, e.Source)
		assert.Equal(t, "reference", e.Source.String())
	}

	spring := terms[StartOfSpring]
	assert.Equal(t, 2, spring.Month)
	assert.Equal(t, 4, spring.Day)
	assert.Equal(t, 4, spring.Hour)
	assert.Equal(t, 2, spring.Minute)
	assert.True(t, spring.Sectional())
}

// TestTermsOfYear_ApproximatePath checks the fallback for uncovered years:
// tagged approximate, all 24 events inside the requested year, in order.
func TestTermsOfYear_ApproximatePath(t *testing.T) {
	terms := TermsOfYear(1950)
	require.Len(t, terms, Count)

	prev := 0
	for i, e := range terms {
		assert.Equal(t, Term(i), e.Term)
		assert.Equal(t, 1950, e.Year, "approximated terms stay inside their year")
		assert.Equal(t, SourceApproximate, e.Source)
		assert.Equal(t, "approximate", e.Source.String())
		assert.Greater(t, e.DayNumber(), prev, "terms must be strictly ordered")
		prev = e.DayNumber()
	}

	// The anchored approximation keeps start of spring in early February.
	spring := terms[StartOfSpring]
	assert.Equal(t, 2, spring.Month)
	assert.InDelta(t, 4, spring.Day, 2)
}

// TestTermOnDate covers the exact-date lookup on both paths.
func TestTermOnDate(t *testing.T) {
	e, ok := TermOnDate(2026, 2, 4)
	require.True(t, ok, "2026-02-04 is start of spring")
	assert.Equal(t, StartOfSpring, e.Term)

	e, ok = TermOnDate(2026, 3, 20)
	require.True(t, ok, "2026-03-20 is the vernal equinox")
	assert.Equal(t, Term(5), e.Term)

	_, ok = TermOnDate(2026, 2, 10)
	assert.False(t, ok, "no term falls on 2026-02-10")
}

// TestSectionalMonthOf pins the month-pillar boundaries, including the
// early-January window that still belongs to month 11.
func TestSectionalMonthOf(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		want    int
	}{
		{name: "Before start of spring", y: 2026, m: 2, d: 3, want: 12},
		{name: "On start of spring", y: 2026, m: 2, d: 4, want: 1},
		{name: "After start of spring", y: 2026, m: 3, d: 1, want: 1},
		{name: "After awakening of insects", y: 2026, m: 3, d: 10, want: 2},
		{name: "On minor cold", y: 2026, m: 1, d: 5, want: 12},
		{name: "Early January still month 11", y: 2026, m: 1, d: 3, want: 11},
		{name: "After white dew", y: 2025, m: 9, d: 20, want: 8},
		{name: "December after major snow", y: 2025, m: 12, d: 20, want: 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionalMonthOf(tt.y, tt.m, tt.d))
		})
	}
}

// TestIsAfterStartOfSpring covers the year-pillar epoch decision.
func TestIsAfterStartOfSpring(t *testing.T) {
	assert.False(t, IsAfterStartOfSpring(2026, 2, 3))
	assert.True(t, IsAfterStartOfSpring(2026, 2, 4), "the term day itself counts")
	assert.True(t, IsAfterStartOfSpring(2026, 2, 5))
	assert.True(t, IsAfterStartOfSpring(2026, 12, 31))
	assert.False(t, IsAfterStartOfSpring(2026, 1, 10))
}

// TestTermsOfMonth returns the in-month events.
func TestTermsOfMonth(t *testing.T) {
	events := TermsOfMonth(2026, 2)
	require.Len(t, events, 2, "February 2026 holds start of spring and rain water")
	assert.Equal(t, StartOfSpring, events[0].Term)
	assert.Equal(t, Term(3), events[1].Term)
}
