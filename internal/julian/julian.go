// Package julian converts between proleptic-Gregorian civil dates and Julian
// day numbers. It is the exchange format every other calendar computation in
// this module is built on.
package julian

import "math"

// ToJulianDay returns the Julian day for the given civil date at midnight.
// By convention the integer part of a Julian day changes at noon, so the
// result always carries a fractional part of .5.
func ToJulianDay(year, month, day int) float64 {
	y := year
	m := month
	if m <= 2 {
		m += 12
		y--
	}
	b := y / 100
	c := 2 - b + b/4
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day+c) - 1524.5
}

// FromJulianDay converts a Julian day back to a civil date, discarding any
// time-of-day fraction.
func FromJulianDay(jd float64) (year, month, day int) {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(math.Floor(b - d - math.Floor(30.6001*e) + f))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

// DayNumber returns the integer Julian day number of the civil date, the
// rounding rule the lunar-year table is calibrated against.
func DayNumber(year, month, day int) int {
	return int(math.Floor(ToJulianDay(year, month, day) + 0.5))
}

// TruncatedDay returns the Julian day truncated toward zero at the midnight
// boundary, the rounding rule the day-pillar anchor is calibrated against.
// It is always DayNumber minus one.
func TruncatedDay(year, month, day int) int {
	return int(math.Floor(ToJulianDay(year, month, day)))
}

// Weekday returns the day of the week for the civil date, 0 = Sunday.
func Weekday(year, month, day int) int {
	return (DayNumber(year, month, day) + 1) % 7
}
