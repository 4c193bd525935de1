package almanac

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/names"
)

// EncodeICS renders a month view as an iCalendar feed: one all-day event per
// solar term and one per lunar month start. Summaries are localized through
// the translator.
func EncodeICS(view MonthView, tr *names.Translator, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, e := range view.Terms {
		event := allDayEvent("term", e.Year, e.Month, e.Day, tr.Term(e.Term))
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	for _, d := range view.Days {
		if !d.IsFirstOfLunarMonth {
			continue
		}
		summary := lunarMonthSummary(d)
		event := allDayEvent("lunar", d.Year, d.Month, d.Day, summary)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func allDayEvent(kind string, year, month, day int, summary string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID,
		fmt.Sprintf(config.FormatUID, kind, year, month, day, config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	event.Props.Set(dtStartProp)
	return event
}

func lunarMonthSummary(d MonthDay) string {
	label := fmt.Sprintf(config.FormatLunarDate, d.Lunar.Month, d.Lunar.Day)
	if d.Lunar.IsLeapMonth {
		label = config.LeapMonthMarker + label
	}
	return label
}
