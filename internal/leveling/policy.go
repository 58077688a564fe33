package leveling

import (
	"time"

	"github.com/osse101/MinesocBot_Go/internal/utils"
)

// ShouldAward reports whether a member last awarded at last may earn XP again at now.
func ShouldAward(now, last time.Time, cooldown time.Duration) bool {
	return !now.Before(last.Add(cooldown))
}

// DrawXP picks an award uniformly from [min, max].
func DrawXP(min, max int) int64 {
	return int64(utils.RandomInt(min, max))
}
