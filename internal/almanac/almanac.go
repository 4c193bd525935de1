// Package almanac composes the calendar engines into full day and month
// profiles: lunisolar date, pillars, sounds, phase, activity suitability,
// hourly fortunes and solar-term annotations for any supported civil date.
package almanac

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/fortune"
	"github.com/tartampluch/go-almanac/internal/ganzhi"
	"github.com/tartampluch/go-almanac/internal/julian"
	"github.com/tartampluch/go-almanac/internal/lunar"
	"github.com/tartampluch/go-almanac/internal/solarterm"
)

// ErrMalformedDate reports a civil date that does not exist, as opposed to one
// outside the supported window.
var ErrMalformedDate = errors.New("malformed civil date")

// DayProfile is the complete almanac reading of one civil day.
type DayProfile struct {
	Year    int
	Month   int
	Day     int
	Weekday int // 0 = Sunday

	Lunar               lunar.Date
	IsFirstOfLunarMonth bool

	YearPillar  ganzhi.Pillar
	MonthPillar ganzhi.Pillar
	DayPillar   ganzhi.Pillar

	YearSound  ganzhi.Sound
	MonthSound ganzhi.Sound
	DaySound   ganzhi.Sound

	Zodiac       ganzhi.Animal // year animal, spring-term adjusted
	ClashAnimal  ganzhi.Animal
	ShaDirection ganzhi.Direction

	SectionalMonth int
	Phase          fortune.Phase
	Favorable      []fortune.Activity
	Unfavorable    []fortune.Activity

	Hours []fortune.HourFortune

	Term    solarterm.Event
	HasTerm bool
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var civilMonthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// validateDate rejects dates that do not exist on the civil calendar.
func validateDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrMalformedDate, month)
	}
	max := civilMonthDays[month]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day < 1 || day > max {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrMalformedDate, year, month, day)
	}
	return nil
}

// FullDayProfile computes the complete almanac reading for a civil date.
func FullDayProfile(year, month, day int) (DayProfile, error) {
	if err := validateDate(year, month, day); err != nil {
		return DayProfile{}, err
	}

	lunarDate, err := lunar.SolarToLunar(year, month, day)
	if err != nil {
		return DayProfile{}, err
	}

	afterSpring := solarterm.IsAfterStartOfSpring(year, month, day)
	yearPillar := ganzhi.YearPillar(year, afterSpring)

	sectionalMonth := solarterm.SectionalMonthOf(year, month, day)
	monthPillar := ganzhi.MonthPillar(yearPillar.Stem, sectionalMonth)

	dayPillar := ganzhi.DayPillar(year, month, day)
	phase := fortune.Classify(monthPillar.Branch, dayPillar.Branch)

	profile := DayProfile{
		Year:    year,
		Month:   month,
		Day:     day,
		Weekday: julian.Weekday(year, month, day),

		Lunar:               lunarDate,
		IsFirstOfLunarMonth: lunarDate.Day == 1,

		YearPillar:  yearPillar,
		MonthPillar: monthPillar,
		DayPillar:   dayPillar,

		YearSound:  ganzhi.NaYin(yearPillar),
		MonthSound: ganzhi.NaYin(monthPillar),
		DaySound:   ganzhi.NaYin(dayPillar),

		Zodiac:       ganzhi.Zodiac(yearPillar.Branch),
		ClashAnimal:  ganzhi.ClashAnimal(dayPillar.Branch),
		ShaDirection: ganzhi.ShaDirection(dayPillar.Branch),

		SectionalMonth: sectionalMonth,
		Phase:          phase,
		Favorable:      fortune.FavorableActivities(phase),
		Unfavorable:    fortune.UnfavorableActivities(phase),

		Hours: fortune.HourlyFortunes(dayPillar),
	}

	if event, ok := solarterm.TermOnDate(year, month, day); ok {
		profile.Term = event
		profile.HasTerm = true
		if event.Source == solarterm.SourceApproximate {
			slog.Debug(config.MsgApproxTerms,
				config.LogKeyComponent, config.CompAlmanac,
				config.LogKeyYear, year,
				config.LogKeySource, event.Source.String(),
			)
		}
	}

	return profile, nil
}

// MonthDay is one day of a month view. ActivityStatus is only meaningful when
// the view was built for a specific activity.
type MonthDay struct {
	DayProfile
	ActivityStatus fortune.Status
}

// MonthView is the almanac reading of a whole civil month.
type MonthView struct {
	Year  int
	Month int
	Days  []MonthDay
	Terms []solarterm.Event
}

// HasReferenceTerms reports whether every term of the view came from the
// exact ephemeris table rather than the approximation.
func (v MonthView) HasReferenceTerms() bool {
	for _, e := range v.Terms {
		if e.Source != solarterm.SourceReference {
			return false
		}
	}
	return true
}

// MonthProfile computes a day-by-day view of the civil month. When activity is
// non-empty, each day additionally carries the activity's suitability under
// that day's phase.
func MonthProfile(year, month int, activity fortune.Activity) (MonthView, error) {
	if err := validateDate(year, month, 1); err != nil {
		return MonthView{}, err
	}

	days := civilMonthDays[month]
	if month == 2 && isLeapYear(year) {
		days = 29
	}

	view := MonthView{
		Year:  year,
		Month: month,
		Days:  make([]MonthDay, 0, days),
		Terms: solarterm.TermsOfMonth(year, month),
	}

	for d := 1; d <= days; d++ {
		profile, err := FullDayProfile(year, month, d)
		if err != nil {
			return MonthView{}, err
		}
		md := MonthDay{DayProfile: profile}
		if activity != "" {
			md.ActivityStatus = fortune.ActivityStatus(profile.Phase, activity)
		}
		view.Days = append(view.Days, md)
	}

	return view, nil
}
