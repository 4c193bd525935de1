// Package fortune derives the 12-phase day classification, the per-phase
// activity suitability tables, and the per-two-hour fortune ratings.
package fortune

import "github.com/tartampluch/go-almanac/internal/ganzhi"

// Phase is one of the 12 day classifications, cyclically ordered. Phase 0
// (Establish) is anchored to days whose branch equals the governing month
// branch.
type Phase int

const (
	Establish Phase = iota
	Remove
	Full
	Balance
	Stable
	Initiate
	Destruction
	Danger
	Success
	Receive
	Open
	Close
)

// PhaseCount is the length of the classification cycle.
const PhaseCount = 12

// Classify returns the day classification from the governing month branch and
// the day branch.
func Classify(monthBranch, dayBranch int) Phase {
	return Phase((dayBranch - monthBranch + 12) % 12)
}

// Status is the suitability of an activity on a given phase.
type Status int

const (
	Neutral Status = iota
	Favorable
	Unfavorable
)

// ActivityStatus reports whether the phase favors, disfavors or ignores the
// activity.
func ActivityStatus(p Phase, a Activity) Status {
	t := phaseTables[p]
	for _, f := range t.favorable {
		if f == a {
			return Favorable
		}
	}
	for _, u := range t.unfavorable {
		if u == a {
			return Unfavorable
		}
	}
	return Neutral
}

// FavorableActivities returns the phase's full favorable list, untruncated;
// display trimming is the caller's concern.
func FavorableActivities(p Phase) []Activity {
	return append([]Activity(nil), phaseTables[p].favorable...)
}

// UnfavorableActivities returns the phase's full unfavorable list.
func UnfavorableActivities(p Phase) []Activity {
	return append([]Activity(nil), phaseTables[p].unfavorable...)
}

// RecommendedPhases scans all 12 phases and returns those that favor and
// those that disfavor the activity.
func RecommendedPhases(a Activity) (good, bad []Phase) {
	for p := Phase(0); p < PhaseCount; p++ {
		switch ActivityStatus(p, a) {
		case Favorable:
			good = append(good, p)
		case Unfavorable:
			bad = append(bad, p)
		}
	}
	return good, bad
}

// Rating is the fortune of a two-hour period.
type Rating int

const (
	RatingNeutral Rating = iota
	RatingAuspicious
	RatingInauspicious
)

// HourFortune is the rating of one two-hour period together with its pillar.
type HourFortune struct {
	Period int // 0-11, 0 straddles midnight
	Pillar ganzhi.Pillar
	Rating Rating
}

// affinityGroup assigns each day branch to one of the three branch
// groups-of-four used by the favorable-period rule.
var affinityGroup = [12]int{0, 2, 1, 0, 2, 1, 0, 2, 1, 0, 2, 1}

// favorablePeriods holds, per group, the bitmask of auspicious period
// indices.
var favorablePeriods = [3]uint16{
	1<<0 | 1<<1 | 1<<3 | 1<<6 | 1<<7 | 1<<9,
	1<<2 | 1<<3 | 1<<5 | 1<<8 | 1<<9 | 1<<11,
	1<<0 | 1<<2 | 1<<4 | 1<<6 | 1<<8 | 1<<10,
}

// punishmentPartner covers the three-punishment and self-punishment
// relations as a static branch-to-branch table.
var punishmentPartner = [12]int{3, 10, 5, 0, 4, 8, 6, 1, 2, 9, 7, 11}

// HourlyFortunes rates all 12 two-hour periods of a day. The checks are
// ordered: clash with the day branch, then the affinity-group rule, then the
// punishment table; the first match wins, so a period is never both
// auspicious and inauspicious.
func HourlyFortunes(day ganzhi.Pillar) []HourFortune {
	out := make([]HourFortune, 0, 12)
	for period := 0; period < 12; period++ {
		out = append(out, HourFortune{
			Period: period,
			Pillar: ganzhi.HourPillar(day.Stem, period),
			Rating: ratePeriod(day.Branch, period),
		})
	}
	return out
}

func ratePeriod(dayBranch, period int) Rating {
	if ganzhi.ClashBranch(dayBranch) == period {
		return RatingInauspicious
	}
	if favorablePeriods[affinityGroup[dayBranch]]&(1<<uint(period)) != 0 {
		return RatingAuspicious
	}
	if punishmentPartner[dayBranch] == period {
		return RatingInauspicious
	}
	return RatingNeutral
}
