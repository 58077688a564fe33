package economy

import (
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// NextStreak returns the streak a claim at now produces for the wallet.
// A first claim starts at zero. A claim more than DailyStreakGrace after the
// previous one resets the streak and reports it as lost.
func NextStreak(w *domain.Wallet, now time.Time) (streak int, lost bool) {
	if w == nil || w.LastDailyAt == nil {
		return 0, false
	}
	if now.Sub(*w.LastDailyAt) > domain.DailyStreakGrace {
		return 0, w.Streak > 0
	}
	return w.Streak + 1, false
}

// DailyPayout is the reward for a claim at the given streak.
func DailyPayout(streak int) int64 {
	amount := int64(domain.DailyBase) + int64(streak)*domain.DailyStreakBonus
	if streak > 0 && streak%domain.DailyBonusEvery == 0 {
		amount += domain.DailyStreakBonus * domain.DailyBonusEvery
	}
	return amount
}
