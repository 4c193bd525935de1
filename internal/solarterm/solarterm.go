// Package solarterm computes the 24 yearly solar-term instants. Years covered
// by the embedded reference table get exact ephemeris-sourced instants; any
// other year falls back to an anchored equal-interval approximation, so the
// calculator never fails regardless of year.
package solarterm

import (
	"embed"
	"log/slog"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/julian"
)

// Term identifies one of the 24 solar terms, 0 = minor cold.
type Term int

// Count is the number of solar terms in a year.
const Count = 24

// StartOfSpring is the term that flips the year pillar.
const StartOfSpring Term = 2

// Source tells how a term instant was obtained.
type Source int

const (
	// SourceReference marks an instant read from the embedded ephemeris
	// table.
	SourceReference Source = iota
	// SourceApproximate marks an instant from the equal-interval fallback,
	// accurate to roughly a day.
	SourceApproximate
)

func (s Source) String() string {
	if s == SourceReference {
		return "reference"
	}
	return "approximate"
}

// Event is one solar-term instant. Year/Month/Day/Hour/Minute locate it as a
// civil wall-clock instant without timezone interpretation.
type Event struct {
	Term   Term
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Source Source
}

// Sectional reports whether the event delimits month pillars. The sectional
// terms are the even-indexed half of the cycle.
func (e Event) Sectional() bool {
	return e.Term%2 == 0
}

// DayNumber returns the integer Julian day number of the event's civil date.
func (e Event) DayNumber() int {
	return julian.DayNumber(e.Year, e.Month, e.Day)
}

//go:embed data/reference.toml
var referenceFS embed.FS

type referenceFile struct {
	Years []struct {
		Year  int     `toml:"year"`
		Terms [][]int `toml:"terms"`
	} `toml:"years"`
}

// reference maps a year to its 24 exact instants. Loaded once at startup;
// a load failure only disables the exact path.
var reference = loadReference()

func loadReference() map[int][]Event {
	raw, err := referenceFS.ReadFile("data/reference.toml")
	if err != nil {
		slog.Error(config.ErrTermData,
			config.LogKeyComponent, config.CompTerms,
			config.LogKeyError, err)
		return nil
	}
	var file referenceFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		slog.Error(config.ErrTermData,
			config.LogKeyComponent, config.CompTerms,
			config.LogKeyError, err)
		return nil
	}

	out := make(map[int][]Event, len(file.Years))
	for _, y := range file.Years {
		if len(y.Terms) != Count {
			continue
		}
		events := make([]Event, 0, Count)
		for i, t := range y.Terms {
			if len(t) != 4 {
				return nil
			}
			events = append(events, Event{
				Term:   Term(i),
				Year:   y.Year,
				Month:  t[0],
				Day:    t[1],
				Hour:   t[2],
				Minute: t[3],
				Source: SourceReference,
			})
		}
		out[y.Year] = events
	}
	return out
}

// TermsOfYear returns the year's 24 term events in cycle order. Every event
// falls within the requested civil year.
func TermsOfYear(year int) []Event {
	if exact, ok := reference[year]; ok {
		out := make([]Event, Count)
		copy(out, exact)
		return out
	}
	return approximate(year)
}

// approximate distributes the 24 terms at equal intervals around the vernal
// equinox anchor. Terms before the equinox get negative offsets so the whole
// cycle stays inside the anchor year.
func approximate(year int) []Event {
	anchor := julian.ToJulianDay(year, config.EquinoxMonth, config.EquinoxDay)
	out := make([]Event, 0, Count)
	for i := 0; i < Count; i++ {
		jd := anchor + float64(i-config.EquinoxTermIndex)*config.DaysPerTerm
		y, m, d := julian.FromJulianDay(jd)

		frac := jd + 0.5 - math.Floor(jd+0.5)
		minutes := int(math.Round(frac * 24 * 60))
		if minutes >= 24*60 {
			minutes = 24*60 - 1
		}

		out = append(out, Event{
			Term:   Term(i),
			Year:   y,
			Month:  m,
			Day:    d,
			Hour:   minutes / 60,
			Minute: minutes % 60,
			Source: SourceApproximate,
		})
	}
	return out
}

// TermOnDate reports the term falling exactly on the given civil date, if
// any. Early-year dates also check the previous year's terms in case an
// approximate instant drifted across the year boundary.
func TermOnDate(year, month, day int) (Event, bool) {
	for _, e := range TermsOfYear(year) {
		if e.Year == year && e.Month == month && e.Day == day {
			return e, true
		}
	}
	if month <= 2 {
		for _, e := range TermsOfYear(year - 1) {
			if e.Year == year && e.Month == month && e.Day == day {
				return e, true
			}
		}
	}
	return Event{}, false
}

// TermsOfMonth returns the terms falling within the given civil month,
// usually two.
func TermsOfMonth(year, month int) []Event {
	var out []Event
	for _, e := range TermsOfYear(year) {
		if e.Year == year && e.Month == month {
			out = append(out, e)
		}
	}
	return out
}

// SectionalMonthOf returns the pillar month (1-12) governing the date: the
// month opened by the most recent sectional term at or before it. Minor cold
// opens month 12 and start of spring opens month 1, so early-January dates
// that precede minor cold still belong to month 11, opened by the previous
// year's last sectional term after the winter solstice.
func SectionalMonthOf(year, month, day int) int {
	jd := julian.DayNumber(year, month, day)

	best, found := Event{}, false
	for _, e := range append(TermsOfYear(year-1), TermsOfYear(year)...) {
		if !e.Sectional() || e.DayNumber() > jd {
			continue
		}
		if !found || e.DayNumber() >= best.DayNumber() {
			best, found = e, true
		}
	}
	if !found {
		// Unreachable for supported dates; every date trails some
		// sectional term of the previous year.
		return 11
	}

	m := int(best.Term) / 2
	if m == 0 {
		m = 12
	}
	return m
}

// IsAfterStartOfSpring reports whether the date is at or after the year's
// start-of-spring term. The comparison is made at whole-day granularity: the
// day the term falls on already counts as after.
func IsAfterStartOfSpring(year, month, day int) bool {
	spring := TermsOfYear(year)[StartOfSpring]
	return julian.DayNumber(year, month, day) >= spring.DayNumber()
}
