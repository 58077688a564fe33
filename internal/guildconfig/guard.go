package guildconfig

import (
	"context"

	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// Reason explains why the guard refused an invocation
type Reason string

const (
	Allow               Reason = ""
	DenyUserBlacklisted Reason = "user_blacklisted"
	DenyCommandDisabled Reason = "command_disabled"
	DenyGuildOnly       Reason = "guild_only"
)

// Invocation is one attempt to run a command
type Invocation struct {
	GuildID   int64 // 0 in direct messages
	UserID    int64
	Command   string
	GuildOnly bool
}

// Decision is the guard's verdict. Reason is Allow when Allowed is true.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// UserBlacklist answers whether a user is barred from every command
type UserBlacklist interface {
	IsUserBlacklisted(ctx context.Context, userID int64) (bool, error)
}

// Guard decides whether a command may run before its handler is invoked
type Guard struct {
	settings  Service
	blacklist UserBlacklist
}

// NewGuard creates a dispatch guard
func NewGuard(settings Service, blacklist UserBlacklist) *Guard {
	return &Guard{settings: settings, blacklist: blacklist}
}

// Evaluate checks the user blacklist, the guild-only flag and the guild's disabled commands, in that order.
// A failed blacklist lookup denies. A failed settings lookup allows.
func (g *Guard) Evaluate(ctx context.Context, inv Invocation) Decision {
	log := logger.FromContext(ctx)

	blacklisted, err := g.blacklist.IsUserBlacklisted(ctx, inv.UserID)
	if err != nil {
		log.Error(LogMsgGuardStoreError, "check", "blacklist", "userID", inv.UserID, "error", err)
		return g.deny(ctx, inv, DenyUserBlacklisted)
	}
	if blacklisted {
		return g.deny(ctx, inv, DenyUserBlacklisted)
	}

	if inv.GuildID == 0 {
		if inv.GuildOnly {
			return g.deny(ctx, inv, DenyGuildOnly)
		}
		return Decision{Allowed: true}
	}

	if IsGuardCommand(inv.Command) {
		return Decision{Allowed: true}
	}

	cfg, err := g.settings.Get(ctx, inv.GuildID)
	if err != nil {
		log.Error(LogMsgGuardStoreError, "check", "disabled_commands", "guildID", inv.GuildID, "error", err)
		return Decision{Allowed: true}
	}
	if cfg.IsDisabled(inv.Command) {
		return g.deny(ctx, inv, DenyCommandDisabled)
	}
	return Decision{Allowed: true}
}

func (g *Guard) deny(ctx context.Context, inv Invocation, reason Reason) Decision {
	metrics.GuardDenials.WithLabelValues(string(reason)).Inc()
	logger.FromContext(ctx).Debug(LogMsgGuardDenied,
		"command", inv.Command, "guildID", inv.GuildID, "userID", inv.UserID, "reason", reason)
	return Decision{Allowed: false, Reason: reason}
}
