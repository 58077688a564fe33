package discord

import (
	"context"

	"github.com/osse101/MinesocBot_Go/internal/blacklist"
	"github.com/osse101/MinesocBot_Go/internal/economy"
	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/profile"
	"github.com/osse101/MinesocBot_Go/internal/reminder"
	"github.com/osse101/MinesocBot_Go/internal/tags"
)

// CardRenderer draws a profile card
type CardRenderer interface {
	Render(ctx context.Context, card profile.Card) ([]byte, error)
}

// BackgroundList reports which backgrounds the renderer can draw
type BackgroundList interface {
	Has(key string) bool
	Keys() []string
}

// AvatarSource downloads a user's avatar image
type AvatarSource interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Services bundles what command handlers depend on
type Services struct {
	Leveling    leveling.Service
	Guilds      guildconfig.Service
	Guard       *guildconfig.Guard
	Blacklist   blacklist.Service
	Economy     economy.Service
	Reminders   reminder.Service
	Tags        tags.Service
	Renderer    CardRenderer
	Backgrounds BackgroundList
	Avatars     AvatarSource
	Registry    *CommandRegistry
	OwnerID     int64
}

// isOwner reports whether userID is the configured bot owner
func (svc *Services) isOwner(userID int64) bool {
	return svc.OwnerID != 0 && userID == svc.OwnerID
}
