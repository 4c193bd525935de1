package julian

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestToJulianDay_KnownEpochs pins the converter to externally documented
// Julian day numbers.
func TestToJulianDay_KnownEpochs(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		jdn   int
		desc  string
	}{
		{name: "J2000 epoch", year: 2000, month: 1, day: 1, jdn: 2451545, desc: "2000-01-01 noon is JD 2451545.0"},
		{name: "Day pillar anchor", year: 2001, month: 1, day: 1, jdn: 2451911, desc: "2001-01-01 is the sexagenary day anchor"},
		{name: "Lunar table epoch", year: 1900, month: 1, day: 31, jdn: 2415051, desc: "First day of lunar year 1900"},
		{name: "Gregorian reform eve", year: 1582, month: 10, day: 15, jdn: 2299161, desc: "First Gregorian day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.jdn, DayNumber(tt.year, tt.month, tt.day), tt.desc)
			assert.Equal(t, tt.jdn-1, TruncatedDay(tt.year, tt.month, tt.day), "truncated day is always day number minus one")
		})
	}
}

// TestRoundTrip sweeps every day of several decades and checks that
// FromJulianDay inverts ToJulianDay exactly.
func TestRoundTrip(t *testing.T) {
	start := time.Date(1899, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2101, 2, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 17) {
		y, m, day := FromJulianDay(ToJulianDay(d.Year(), int(d.Month()), d.Day()))
		assert.Equal(t, d.Year(), y)
		assert.Equal(t, int(d.Month()), m)
		assert.Equal(t, d.Day(), day)
	}
}

// TestDayNumber_Monotonic verifies consecutive days differ by exactly one day
// number across month and year boundaries.
func TestDayNumber_Monotonic(t *testing.T) {
	prev := DayNumber(1999, 12, 25)
	d := time.Date(1999, 12, 26, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 800; i++ {
		n := DayNumber(d.Year(), int(d.Month()), d.Day())
		assert.Equal(t, prev+1, n, "day numbers must increase by one per civil day")
		prev = n
		d = d.AddDate(0, 0, 1)
	}
}

// TestWeekday anchors the weekday derivation to known dates.
func TestWeekday(t *testing.T) {
	assert.Equal(t, 6, Weekday(2000, 1, 1), "2000-01-01 was a Saturday")
	assert.Equal(t, 2, Weekday(2026, 2, 17), "2026-02-17 is a Tuesday")
}
