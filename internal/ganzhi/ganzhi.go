// Package ganzhi implements the sexagenary (stem-branch) cycle: the year,
// month, day and hour pillars, their elemental sounds, and the zodiac, clash
// and direction attributes derived from branches.
package ganzhi

import (
	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/julian"
)

// Pillar is a (stem, branch) pair. Stems cycle through 10 values and branches
// through 12; only pairs with matching parity occur in the 60-unit cycle.
type Pillar struct {
	Stem   int // 0-9
	Branch int // 0-11
}

// Valid reports whether the pair occurs in the sexagenary cycle.
func (p Pillar) Valid() bool {
	return p.Stem >= 0 && p.Stem < 10 &&
		p.Branch >= 0 && p.Branch < 12 &&
		p.Stem%2 == p.Branch%2
}

// Cycle returns the pillar's position 0-59 in the combined cycle.
func (p Pillar) Cycle() int {
	return ((6*p.Stem-5*p.Branch)%60 + 60) % 60
}

// String renders the pillar in pinyin, e.g. "Jiǎ-Zǐ".
func (p Pillar) String() string {
	return stemNames[p.Stem] + "-" + branchNames[p.Branch]
}

var stemNames = [10]string{
	"Jiǎ", "Yǐ", "Bǐng", "Dīng", "Wù", "Jǐ", "Gēng", "Xīn", "Rén", "Guǐ",
}

var branchNames = [12]string{
	"Zǐ", "Chǒu", "Yín", "Mǎo", "Chén", "Sì", "Wǔ", "Wèi", "Shēn", "Yǒu", "Xū", "Hài",
}

// StemName returns the pinyin name of a stem index.
func StemName(stem int) string { return stemNames[stem] }

// BranchName returns the pinyin name of a branch index.
func BranchName(branch int) string { return branchNames[branch] }

func fromOffset(offset int) Pillar {
	return Pillar{
		Stem:   ((offset % 10) + 10) % 10,
		Branch: ((offset % 12) + 12) % 12,
	}
}

// YearPillar derives the year pillar. The year flips at start of spring, not
// at lunar new year: pass afterSpringStart=false for dates that precede the
// term and the previous year's pillar is returned.
func YearPillar(year int, afterSpringStart bool) Pillar {
	effective := year
	if !afterSpringStart {
		effective--
	}
	return fromOffset(effective - config.AnchorYear)
}

// fiveTigers maps a year stem to the stem opening pillar month 1.
var fiveTigers = [10]int{2, 4, 6, 8, 0, 2, 4, 6, 8, 0}

// MonthPillar derives the month pillar from the year stem and the pillar
// month (1-12) delimited by sectional terms. Month 1 is always branch 2.
func MonthPillar(yearStem, month int) Pillar {
	return Pillar{
		Stem:   (fiveTigers[yearStem] + month - 1) % 10,
		Branch: (month + 1) % 12,
	}
}

// DayPillar derives the day pillar for a civil date. It is a pure function of
// elapsed days from the anchor, with no month or year context.
func DayPillar(year, month, day int) Pillar {
	return DayPillarFromJD(julian.TruncatedDay(year, month, day))
}

// DayPillarFromJD derives the day pillar from a truncated Julian day.
func DayPillarFromJD(jd int) Pillar {
	offset := jd - config.DayPillarAnchorJD
	return Pillar{
		Stem:   ((config.DayPillarAnchorStem+offset)%10 + 10) % 10,
		Branch: ((config.DayPillarAnchorBranch+offset)%12 + 12) % 12,
	}
}

// fiveRats maps a day stem to the stem opening the midnight two-hour period.
var fiveRats = [10]int{0, 2, 4, 6, 8, 0, 2, 4, 6, 8}

// HourPillar derives the pillar of a two-hour period (0-11, 0 straddling
// midnight) from the day stem. The branch is the period index itself.
func HourPillar(dayStem, period int) Pillar {
	return Pillar{
		Stem:   (fiveRats[dayStem] + period) % 10,
		Branch: period,
	}
}

// HourIndexOf maps a 0-23 clock hour to its two-hour period index. Hour 23
// belongs to the next day's midnight period.
func HourIndexOf(hour int) int {
	if hour == 23 {
		return 0
	}
	return (hour + 1) / 2
}

// Sound is the elemental "nayin" attribute shared by each consecutive pair of
// the 60-cycle; there are 30 distinct sounds.
type Sound int

// NaYin returns the elemental sound of a pillar. Hour pillars carry no sound
// in traditional use, but the mapping is total over valid pairs.
func NaYin(p Pillar) Sound {
	return Sound(p.Cycle() / 2)
}

// Animal is a zodiac animal index, 0 = rat, aligned with branch indices.
type Animal int

// Zodiac returns the animal keyed by a branch index.
func Zodiac(branch int) Animal {
	return Animal(branch)
}

// ClashBranch returns the branch in direct six-way opposition.
func ClashBranch(branch int) int {
	return (branch + 6) % 12
}

// ClashAnimal returns the animal clashed by the given day branch.
func ClashAnimal(dayBranch int) Animal {
	return Zodiac(ClashBranch(dayBranch))
}

// Direction is a compass direction for the day's inauspicious bearing.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// shaByBranch is indexed by day branch: the monkey-rat-dragon group bears
// south, tiger-horse-dog north, pig-rabbit-goat west, snake-rooster-ox east.
var shaByBranch = [12]Direction{
	South, East, North, West, South, East, North, West, South, East, North, West,
}

// ShaDirection returns the inauspicious direction of the day branch.
func ShaDirection(dayBranch int) Direction {
	return shaByBranch[dayBranch]
}
