package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/tartampluch/go-almanac/internal/almanac"
	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/fortune"
	"github.com/tartampluch/go-almanac/internal/names"
)

// main delegates to runMain so deferred calls run before the process exits;
// os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages argument parsing, logging setup and exit codes.
func runMain() int {
	dateFlag := flag.String(config.FlagDate, "", config.FlagDescDate)
	monthFlag := flag.String(config.FlagMonth, "", config.FlagDescMonth)
	activityFlag := flag.String(config.FlagActivity, "", config.FlagDescActivity)
	langFlag := flag.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	icsFlag := flag.Bool(config.FlagICS, false, config.FlagDescICS)
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyVersion, config.Version,
	)

	if err := run(*dateFlag, *monthFlag, *activityFlag, *langFlag, *icsFlag); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run dispatches to the day, month or ICS view.
func run(dateArg, monthArg, activityArg, lang string, ics bool) error {
	tr := names.New(lang)

	activity, err := resolveActivity(activityArg)
	if err != nil {
		return err
	}

	if monthArg != "" || ics {
		when := time.Now()
		if monthArg != "" {
			when, err = time.Parse(config.MonthFlagLayout, monthArg)
			if err != nil {
				return errors.New(config.ErrBadMonthFlag)
			}
		}
		view, err := almanac.MonthProfile(when.Year(), int(when.Month()), activity)
		if err != nil {
			return err
		}
		if ics {
			data, err := almanac.EncodeICS(view, tr, time.Now())
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}
		printMonth(view, activity, tr)
		return nil
	}

	when := time.Now()
	if dateArg != "" {
		when, err = time.Parse(config.DateFlagLayout, dateArg)
		if err != nil {
			return errors.New(config.ErrBadDateFlag)
		}
	}
	profile, err := almanac.FullDayProfile(when.Year(), int(when.Month()), when.Day())
	if err != nil {
		return err
	}
	printDay(profile, tr)
	return nil
}

// resolveActivity maps the flag value onto the catalogue.
func resolveActivity(arg string) (fortune.Activity, error) {
	if arg == "" {
		return "", nil
	}
	for _, a := range fortune.AllActivities() {
		if string(a) == arg {
			return a, nil
		}
	}
	slog.Debug(config.ErrBadActivity,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyActivity, arg,
	)
	return "", fmt.Errorf("%s: %q", config.ErrBadActivity, arg)
}

// printDay renders the full profile of one day.
func printDay(p almanac.DayProfile, tr *names.Translator) {
	fmt.Printf("%04d-%02d-%02d  %s\n", p.Year, p.Month, p.Day, tr.Weekday(p.Weekday))

	lunarLabel := fmt.Sprintf(config.FormatLunarDate, p.Lunar.Month, p.Lunar.Day)
	if p.Lunar.IsLeapMonth {
		lunarLabel = config.LeapMonthMarker + lunarLabel
	}
	fmt.Printf("Lunar %d %s\n", p.Lunar.Year, lunarLabel)

	if p.HasTerm {
		fmt.Printf("%s %s (%02d:%02d)\n", config.TermMarker,
			tr.Term(p.Term.Term), p.Term.Hour, p.Term.Minute)
	}

	fmt.Printf("Year  %s  %s  %s\n", p.YearPillar, tr.Sound(p.YearSound), tr.Animal(p.Zodiac))
	fmt.Printf("Month %s  %s\n", p.MonthPillar, tr.Sound(p.MonthSound))
	fmt.Printf("Day   %s  %s\n", p.DayPillar, tr.Sound(p.DaySound))

	fmt.Printf("Phase %s   Clash %s   Sha %s\n",
		tr.Phase(p.Phase), tr.Animal(p.ClashAnimal), tr.Direction(p.ShaDirection))

	fmt.Printf("Favorable:   %s\n", activityLine(p.Favorable, config.MaxFavorableShown, tr))
	fmt.Printf("Unfavorable: %s\n", activityLine(p.Unfavorable, config.MaxUnfavorableShown, tr))

	fmt.Println("Hours:")
	for _, h := range p.Hours {
		start := (2*h.Period + 23) % 24
		end := (2*h.Period + 1) % 24
		fmt.Printf("  %s  %-10s %s\n",
			fmt.Sprintf(config.FormatHourRange, start, end),
			h.Pillar, tr.Rating(h.Rating))
	}
}

// activityLine joins localized activity names, trimmed to the display limit.
func activityLine(list []fortune.Activity, limit int, tr *names.Translator) string {
	if len(list) > limit {
		list = list[:limit]
	}
	parts := make([]string, 0, len(list))
	for _, a := range list {
		parts = append(parts, tr.Activity(a))
	}
	return strings.Join(parts, ", ")
}

// printMonth renders one row per day. Term days carry a star, lunar month
// starts an angle marker, and a requested activity adds its per-day status.
func printMonth(view almanac.MonthView, activity fortune.Activity, tr *names.Translator) {
	fmt.Printf("%04d-%02d\n", view.Year, view.Month)
	for _, d := range view.Days {
		marker := " "
		if d.HasTerm {
			marker = config.TermMarker
		} else if d.IsFirstOfLunarMonth {
			marker = config.FirstDayMarker
		}

		lunarLabel := fmt.Sprintf(config.FormatLunarDate, d.Lunar.Month, d.Lunar.Day)
		if d.Lunar.IsLeapMonth {
			lunarLabel = config.LeapMonthMarker + lunarLabel
		}

		line := fmt.Sprintf("%2d %s %-6s %-10s %-12s clash %s",
			d.Day, marker, lunarLabel, d.DayPillar,
			tr.Phase(d.Phase), tr.Animal(d.ClashAnimal))

		if d.HasTerm {
			line += "  " + tr.Term(d.Term.Term)
		}
		if activity != "" {
			line += "  " + tr.Status(d.ActivityStatus)
		}
		fmt.Println(line)
	}
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// setupLogging configures the default slog logger on stderr, keeping stdout
// free for the rendered views.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}
