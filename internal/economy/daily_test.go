package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

func TestDailyPayout(t *testing.T) {
	tests := []struct {
		streak int
		want   int64
	}{
		{0, 150},
		{1, 170},
		{4, 230},
		{5, 350}, // 150 + 100 + 100 bonus
		{6, 270},
		{10, 550},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DailyPayout(tt.streak), "streak %d", tt.streak)
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name       string
		wallet     *domain.Wallet
		wantStreak int
		wantLost   bool
	}{
		{"no wallet", nil, 0, false},
		{"never claimed", &domain.Wallet{Balance: 40}, 0, false},
		{"claimed yesterday", &domain.Wallet{Streak: 3, LastDailyAt: at(25 * time.Hour)}, 4, false},
		{"exactly at grace", &domain.Wallet{Streak: 3, LastDailyAt: at(domain.DailyStreakGrace)}, 4, false},
		{"past grace", &domain.Wallet{Streak: 3, LastDailyAt: at(domain.DailyStreakGrace + time.Second)}, 0, true},
		{"past grace without streak", &domain.Wallet{Streak: 0, LastDailyAt: at(72 * time.Hour)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, lost := NextStreak(tt.wallet, now)
			assert.Equal(t, tt.wantStreak, streak)
			assert.Equal(t, tt.wantLost, lost)
		})
	}
}
