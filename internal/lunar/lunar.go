// Package lunar converts between civil (Gregorian) dates and the traditional
// lunisolar calendar, backed by the precomputed year table in lunardata.
package lunar

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/julian"
	"github.com/tartampluch/go-almanac/internal/lunardata"
)

// ErrOutOfRange reports a year outside the supported table window.
var ErrOutOfRange = errors.New("year out of supported range")

// Date is a lunisolar calendar date. IsLeapMonth is only ever true when Month
// equals the year's leap-month position.
type Date struct {
	Year        int
	Month       int // 1-12
	Day         int // 1-30
	IsLeapMonth bool
}

func outOfRange(year int) error {
	return fmt.Errorf("%w: %d (supported %d-%d)",
		ErrOutOfRange, year, config.MinLunarYear, config.MaxLunarYear)
}

// SolarToLunar converts a civil date to its lunisolar representation.
func SolarToLunar(year, month, day int) (Date, error) {
	if year < config.MinLunarYear || year > config.MaxLunarYear {
		return Date{}, outOfRange(year)
	}

	jd := julian.DayNumber(year, month, day)

	lunarYear := year
	rec, ok := lunardata.Get(lunarYear)
	if ok && jd < rec.FirstDayJD {
		// The date precedes this year's first lunar day, so it still
		// belongs to the previous lunar year.
		lunarYear--
		rec, ok = lunardata.Get(lunarYear)
	}
	if !ok {
		return Date{}, outOfRange(lunarYear)
	}

	offset := jd - rec.FirstDayJD

	lunarMonth := 1
	isLeap := false
	slot := 0
	for offset >= rec.MonthDays[slot] {
		offset -= rec.MonthDays[slot]
		slot++

		if rec.LeapMonth > 0 && slot == rec.LeapMonth {
			// The slot we just entered is the intercalary month.
			isLeap = true
		} else {
			isLeap = false
			lunarMonth++
		}

		if slot >= len(rec.MonthDays) {
			lunarYear++
			rec, ok = lunardata.Get(lunarYear)
			if !ok {
				return Date{}, outOfRange(lunarYear)
			}
			slot = 0
			lunarMonth = 1
			isLeap = false
		}
	}

	return Date{
		Year:        lunarYear,
		Month:       lunarMonth,
		Day:         offset + 1,
		IsLeapMonth: isLeap,
	}, nil
}

// LunarToSolar converts a lunisolar date back to the civil calendar. It is the
// exact inverse of SolarToLunar for every date either side produces.
func LunarToSolar(d Date) (year, month, day int, err error) {
	if d.Year < config.MinLunarYear || d.Year > config.MaxLunarYear {
		return 0, 0, 0, outOfRange(d.Year)
	}
	rec, ok := lunardata.Get(d.Year)
	if !ok {
		return 0, 0, 0, outOfRange(d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return 0, 0, 0, fmt.Errorf("lunar month %d out of range", d.Month)
	}
	if d.IsLeapMonth && d.Month != rec.LeapMonth {
		return 0, 0, 0, fmt.Errorf("lunar year %d has no leap month %d", d.Year, d.Month)
	}

	offset := 0
	slot := 0
	for m := 1; m < d.Month; m++ {
		offset += rec.MonthDays[slot]
		slot++
		if rec.LeapMonth == m {
			// The leap slot trails its month and precedes the target.
			offset += rec.MonthDays[slot]
			slot++
		}
	}
	if d.IsLeapMonth {
		// Skip the regular month; the leap slot follows it.
		offset += rec.MonthDays[slot]
		slot++
	}

	if d.Day < 1 || d.Day > rec.MonthDays[slot] {
		return 0, 0, 0, fmt.Errorf("lunar day %d out of range for month of %d days",
			d.Day, rec.MonthDays[slot])
	}
	offset += d.Day - 1

	y, m, dd := julian.FromJulianDay(float64(rec.FirstDayJD + offset))
	return y, m, dd, nil
}

// MonthDays returns the number of days in the given lunar month. Set leap to
// address the intercalary slot of a leap year.
func MonthDays(year, month int, leap bool) (int, error) {
	rec, ok := lunardata.Get(year)
	if !ok {
		return 0, outOfRange(year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("lunar month %d out of range", month)
	}
	idx := month - 1
	if rec.LeapMonth > 0 && month > rec.LeapMonth {
		idx++
	}
	if leap {
		if month != rec.LeapMonth {
			return 0, fmt.Errorf("lunar year %d has no leap month %d", year, month)
		}
		idx = month
	}
	return rec.MonthDays[idx], nil
}

// YearDays returns the total number of days in the lunar year.
func YearDays(year int) (int, error) {
	rec, ok := lunardata.Get(year)
	if !ok {
		return 0, outOfRange(year)
	}
	total := 0
	for _, d := range rec.MonthDays {
		total += d
	}
	return total, nil
}

// LeapMonth returns the year's leap-month position, 0 when there is none.
func LeapMonth(year int) (int, error) {
	rec, ok := lunardata.Get(year)
	if !ok {
		return 0, outOfRange(year)
	}
	return rec.LeapMonth, nil
}

// SpringFestival returns the civil date of the year's lunar month 1 day 1.
func SpringFestival(year int) (month, day int, err error) {
	rec, ok := lunardata.Get(year)
	if !ok {
		return 0, 0, outOfRange(year)
	}
	_, m, d := julian.FromJulianDay(float64(rec.FirstDayJD))
	return m, d, nil
}
