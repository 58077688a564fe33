package blacklist

import (
	"context"

	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// GateDecision tells the guild-create handler whether to stay in a guild
type GateDecision struct {
	Blacklisted bool
	Reason      string
}

// GuildJoinGate screens guilds as the bot joins or reconnects to them
type GuildJoinGate struct {
	svc       Service
	publisher event.Publisher
}

// NewGuildJoinGate creates a gate backed by the blacklist service
func NewGuildJoinGate(svc Service, publisher event.Publisher) *GuildJoinGate {
	return &GuildJoinGate{svc: svc, publisher: publisher}
}

// Check looks the guild up in the blacklist. A failed lookup keeps the guild.
func (g *GuildJoinGate) Check(ctx context.Context, guildID int64) GateDecision {
	entry, err := g.svc.Get(ctx, KindGuild, guildID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgGateLookupFailed, "guildID", guildID, "error", err)
		return GateDecision{}
	}
	if entry == nil {
		return GateDecision{}
	}
	return GateDecision{Blacklisted: true, Reason: entry.Reason}
}

// Left records that the bot left a blacklisted guild
func (g *GuildJoinGate) Left(ctx context.Context, guildID, ownerID int64, reason string, notified bool) {
	metrics.BlacklistedGuildsLeft.Inc()
	logger.FromContext(ctx).Info(LogMsgBlacklistedGuildLeft,
		"guildID", guildID, "ownerID", ownerID, "notified", notified)
	g.publisher.PublishWithRetry(ctx, event.NewGuildBlacklistedEvent(guildID, ownerID, reason, notified))
}
