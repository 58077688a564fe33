package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// Service manages action cooldowns for users
type Service interface {
	// CheckCooldown checks if a user's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, userID int64, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks cooldown and executes action if allowed
	// This is the primary method - prevents race conditions
	EnforceCooldown(ctx context.Context, userID int64, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, userID int64, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, userID int64, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	r := e.Remaining.Truncate(time.Second)
	switch {
	case r >= time.Hour:
		return fmt.Sprintf(ErrFmtCooldownHours, e.Action, int(r.Hours()), int(r.Minutes())%60)
	case r >= time.Minute:
		return fmt.Sprintf(ErrFmtCooldownMinutes, e.Action, int(r.Minutes()), int(r.Seconds())%60)
	default:
		return fmt.Sprintf(ErrFmtCooldownSeconds, e.Action, int(r.Seconds()))
	}
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
