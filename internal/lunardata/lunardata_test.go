package lunardata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/julian"
)

// TestGet_Window checks the accessor's boundary behavior.
func TestGet_Window(t *testing.T) {
	_, ok := Get(config.MinLunarYear - 1)
	assert.False(t, ok, "1899 is outside the table")

	_, ok = Get(config.MaxLunarYear + 1)
	assert.False(t, ok, "2101 is outside the table")

	first, ok := Get(config.MinLunarYear)
	require.True(t, ok)
	assert.Equal(t, config.FirstLunarEpochJD, first.FirstDayJD, "table epoch is 1900-01-31")

	_, ok = Get(config.MaxLunarYear)
	assert.True(t, ok)
}

// TestRecords_Shape verifies structural invariants of every decoded record.
func TestRecords_Shape(t *testing.T) {
	prevFirst := 0
	for y := config.MinLunarYear; y <= config.MaxLunarYear; y++ {
		r, ok := Get(y)
		require.True(t, ok, "year %d must be covered", y)

		want := 12
		if r.LeapMonth > 0 {
			want = 13
		}
		assert.Len(t, r.MonthDays, want, "year %d month count", y)

		total := 0
		for _, d := range r.MonthDays {
			assert.Contains(t, []int{29, 30}, d, "year %d month length", y)
			total += d
		}
		assert.GreaterOrEqual(t, total, 353, "year %d total days", y)
		assert.LessOrEqual(t, total, 385, "year %d total days", y)

		assert.Greater(t, r.FirstDayJD, prevFirst, "first days must be strictly increasing")
		prevFirst = r.FirstDayJD
	}
}

// TestKnownNewYears pins a few lunar new-year dates against documented values.
func TestKnownNewYears(t *testing.T) {
	tests := []struct {
		lunarYear int
		year      int
		month     int
		day       int
	}{
		{1900, 1900, 1, 31},
		{1984, 1984, 2, 2},
		{2000, 2000, 2, 5},
		{2025, 2025, 1, 29},
		{2026, 2026, 2, 17},
	}
	for _, tt := range tests {
		r, ok := Get(tt.lunarYear)
		require.True(t, ok)
		assert.Equal(t, julian.DayNumber(tt.year, tt.month, tt.day), r.FirstDayJD,
			"lunar year %d should start on %d-%02d-%02d", tt.lunarYear, tt.year, tt.month, tt.day)
	}
}

// TestKnownLeapMonths pins leap-month positions for documented years.
func TestKnownLeapMonths(t *testing.T) {
	tests := []struct {
		year int
		leap int
	}{
		{1900, 8},
		{1984, 10},
		{1995, 8},
		{1998, 5},
		{2004, 2},
		{2017, 6},
		{2020, 4},
		{2023, 2},
		{2024, 0},
		{2025, 6},
		{2026, 0},
	}
	for _, tt := range tests {
		r, ok := Get(tt.year)
		require.True(t, ok)
		assert.Equal(t, tt.leap, r.LeapMonth, "leap month of %d", tt.year)
	}
}
