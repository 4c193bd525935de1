package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-almanac/internal/ganzhi"
)

// TestClassify anchors the cycle and verifies its periodicity: over any 12
// consecutive day branches every phase appears exactly once.
func TestClassify(t *testing.T) {
	assert.Equal(t, Establish, Classify(2, 2), "a day sharing the month branch is Establish")
	assert.Equal(t, Close, Classify(1, 0), "branch 0 under month branch 1 is Close")
	assert.Equal(t, Remove, Classify(2, 3))

	for monthBranch := 0; monthBranch < 12; monthBranch++ {
		seen := make(map[Phase]bool)
		for dayBranch := 0; dayBranch < 12; dayBranch++ {
			seen[Classify(monthBranch, dayBranch)] = true
		}
		assert.Len(t, seen, PhaseCount, "month branch %d", monthBranch)
	}
}

// TestActivityStatus checks membership against the fixed phase tables.
func TestActivityStatus(t *testing.T) {
	assert.Equal(t, Favorable, ActivityStatus(Stable, Wedding))
	assert.Equal(t, Unfavorable, ActivityStatus(Destruction, Wedding))
	assert.Equal(t, Neutral, ActivityStatus(Stable, Fishing))
	assert.Equal(t, Favorable, ActivityStatus(Close, Burial))
	assert.Equal(t, Unfavorable, ActivityStatus(Open, Burial))
}

// TestRecommendedPhases runs the reverse query for a few activities.
func TestRecommendedPhases(t *testing.T) {
	good, bad := RecommendedPhases(Wedding)
	assert.Contains(t, good, Full)
	assert.Contains(t, good, Stable)
	assert.Contains(t, good, Success)
	assert.Contains(t, bad, Destruction)
	assert.Contains(t, bad, Close)

	for _, p := range good {
		assert.NotContains(t, bad, p, "a phase cannot both favor and disfavor")
	}

	good, bad = RecommendedPhases(Acupuncture)
	assert.Empty(t, good, "acupuncture appears in no phase table")
	assert.Empty(t, bad)
}

// TestPhaseLists verifies the exposed lists are copies.
func TestPhaseLists(t *testing.T) {
	l := FavorableActivities(Establish)
	require.NotEmpty(t, l)
	l[0] = "mutated"
	assert.NotEqual(t, Activity("mutated"), FavorableActivities(Establish)[0])
}

// TestHourlyFortunes_Totality checks that every day yields exactly 12 rated
// periods, each with a valid pillar and one of the three ratings.
func TestHourlyFortunes_Totality(t *testing.T) {
	for cycle := 0; cycle < 60; cycle++ {
		day := ganzhi.Pillar{Stem: cycle % 10, Branch: cycle % 12}
		fortunes := HourlyFortunes(day)
		require.Len(t, fortunes, 12)

		for i, f := range fortunes {
			assert.Equal(t, i, f.Period)
			assert.Equal(t, i, f.Pillar.Branch, "period index is the hour branch")
			assert.True(t, f.Pillar.Valid())
			assert.Contains(t,
				[]Rating{RatingAuspicious, RatingInauspicious, RatingNeutral},
				f.Rating)
		}
	}
}

// TestHourlyFortunes_Rules pins the ordered clash/affinity/punishment checks.
func TestHourlyFortunes_Rules(t *testing.T) {
	// Jiǎ-Zǐ day: branch 0. Clash period is 6.
	fortunes := HourlyFortunes(ganzhi.Pillar{Stem: 0, Branch: 0})
	assert.Equal(t, RatingInauspicious, fortunes[6].Rating, "direct opposition beats the affinity rule")
	// Branch 0 belongs to the first affinity group: periods 0,1,3,7,9 are auspicious.
	for _, p := range []int{0, 1, 3, 7, 9} {
		assert.Equal(t, RatingAuspicious, fortunes[p].Rating, "period %d", p)
	}
	// Punishment partner of branch 0 is 3, but 3 is already favorable, so
	// the earlier check wins and the rating stays auspicious.
	assert.Equal(t, RatingAuspicious, fortunes[3].Rating)
	// Periods in no rule stay neutral.
	assert.Equal(t, RatingNeutral, fortunes[2].Rating)

	// Xū day (branch 10): punishment partner 7 is neither the clash nor in
	// its favorable set, so the punishment check surfaces it.
	fortunes = HourlyFortunes(ganzhi.Pillar{Stem: 4, Branch: 10})
	assert.Equal(t, RatingInauspicious, fortunes[7].Rating)
	assert.Equal(t, RatingInauspicious, fortunes[4].Rating, "clash of branch 10")

	// Chén day (branch 4) self-punishes, but period 4 sits in its
	// favorable set, so the affinity check shadows it.
	fortunes = HourlyFortunes(ganzhi.Pillar{Stem: 4, Branch: 4})
	assert.Equal(t, RatingAuspicious, fortunes[4].Rating)
}

// TestCatalogue checks that every activity referenced by a phase table is
// part of the catalogue.
func TestCatalogue(t *testing.T) {
	all := make(map[Activity]bool)
	for _, a := range AllActivities() {
		all[a] = true
	}
	for p := Phase(0); p < PhaseCount; p++ {
		for _, a := range FavorableActivities(p) {
			assert.True(t, all[a], "favorable %q of phase %d missing from catalogue", a, p)
		}
		for _, a := range UnfavorableActivities(p) {
			assert.True(t, all[a], "unfavorable %q of phase %d missing from catalogue", a, p)
		}
	}
}
