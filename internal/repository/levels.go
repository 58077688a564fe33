package repository

import (
	"context"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// LevelFunc maps a total XP amount to the level it corresponds to.
type LevelFunc func(xp int64) int

// Levels defines the data access interface for member XP progress
type Levels interface {
	// ApplyAward grants amount XP when the member's cooldown window has elapsed at now.
	// A member without a row is created with the award. When a concurrent award already
	// consumed the window it returns domain.ErrRaceLoss and changes nothing.
	ApplyAward(ctx context.Context, guildID, userID, amount int64, now time.Time, cooldown time.Duration, levelFor LevelFunc) (*domain.AwardResult, error)

	// GrantXP adds amount XP without consulting the cooldown and leaves last_award_at untouched.
	GrantXP(ctx context.Context, guildID, userID, amount int64, levelFor LevelFunc) (*domain.AwardResult, error)

	// GetProgress returns nil, nil when the member has no row.
	GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error)

	TopMembers(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error)

	// MemberRank returns nil, nil when the member has no row.
	MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error)

	// SetAccentColor and SetBackground return domain.ErrNotFound when the member has no row.
	SetAccentColor(ctx context.Context, guildID, userID int64, color uint32) error
	SetBackground(ctx context.Context, guildID, userID int64, key string) error
}
