package leveling

import (
	"math"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/utils"
)

// MaxLevel keeps XPRequired inside int64 (4*L^3 must not overflow).
const MaxLevel = 1_000_000

// XPRequired is the cumulative XP at which level starts: round(4*level^3 / 5).
// 4*L^3/5 never has a fractional part of exactly .5, so integer rounding is exact.
func XPRequired(level int) int64 {
	if level < domain.MinLevel {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	l := int64(level)
	return (4*l*l*l + 2) / 5
}

// LevelFor returns the largest level L >= 1 with XPRequired(L) <= xp.
func LevelFor(xp int64) int {
	if xp < XPRequired(domain.MinLevel+1) {
		return domain.MinLevel
	}

	// cube-root estimate, then correct float error in either direction
	level := int(math.Cbrt(float64(xp) * 5 / 4))
	if level > MaxLevel {
		level = MaxLevel
	}
	for level < MaxLevel && XPRequired(level+1) <= xp {
		level++
	}
	for level > domain.MinLevel && XPRequired(level) > xp {
		level--
	}
	return level
}

// Progress is how far xp fills the bar towards the next level, as xp / XPRequired(level+1) in [0, 1].
func Progress(xp int64, level int) float64 {
	next := XPRequired(level + 1)
	if next <= 0 {
		return 0
	}
	return utils.Clamp01(float64(xp) / float64(next))
}
