package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// TextHandler handles a prefixed chat invocation that passed the dispatch guard
type TextHandler func(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string, svc *Services)

// DefaultTextCommands lists the commands that also answer to the guild prefix.
// Everything else is slash only.
func DefaultTextCommands() map[string]TextHandler {
	return map[string]TextHandler{
		"ping":        pingText,
		"help":        helpText,
		"balance":     balanceText,
		"daily":       dailyText,
		"shop":        shopText,
		"leaderboard": leaderboardText,
		"tag":         tagText,
	}
}

// RegisterText adds a prefixed form for a registered command
func (r *CommandRegistry) RegisterText(name string, handler TextHandler) {
	r.TextHandlers[name] = handler
}

// HasText reports whether name answers to the prefix
func (r *CommandRegistry) HasText(name string) bool {
	_, ok := r.TextHandlers[name]
	return ok
}

// HandleText dispatches a parsed prefix invocation through the same guard as slash
// commands. It reports false when inv names no registered command.
func (r *CommandRegistry) HandleText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, inv guildconfig.TextInvocation, svc *Services) bool {
	if !r.Has(inv.Command) {
		return false
	}
	h, ok := r.TextHandlers[inv.Command]
	if !ok {
		replyText(ctx, s, m, fmt.Sprintf(MsgSlashOnly, inv.Command))
		return true
	}
	log := logger.FromContext(ctx)

	guardInv := guildconfig.Invocation{
		GuildID:   parseSnowflake(m.GuildID),
		UserID:    parseSnowflake(m.Author.ID),
		Command:   inv.Command,
		GuildOnly: isGuildOnly(r.Commands[inv.Command]),
	}
	if decision := svc.Guard.Evaluate(ctx, guardInv); !decision.Allowed {
		log.Info(LogMsgCommandDenied, "command", inv.Command, "reason", decision.Reason, "userID", guardInv.UserID)
		metrics.CommandsTotal.WithLabelValues(inv.Command, metrics.ResultDenied).Inc()
		replyText(ctx, s, m, denialMessage(decision.Reason))
		return true
	}

	start := time.Now()
	h(ctx, s, m, inv.Args, svc)
	metrics.CommandDuration.WithLabelValues(inv.Command).Observe(time.Since(start).Seconds())
	metrics.CommandsTotal.WithLabelValues(inv.Command, metrics.ResultSuccess).Inc()
	return true
}

// replyText answers a prefixed invocation in its channel without pinging anyone
func replyText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	reply(ctx, s, m, &discordgo.MessageSend{Content: content})
}

func replyEmbed(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, embed *discordgo.MessageEmbed) {
	reply(ctx, s, m, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}})
}

func reply(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, msg *discordgo.MessageSend) {
	msg.Reference = m.Reference()
	msg.AllowedMentions = &discordgo.MessageAllowedMentions{}
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, msg); err != nil {
		logger.FromContext(ctx).Warn(LogMsgReplyFailed, "channelID", m.ChannelID, "error", err)
	}
}

// replyFriendlyError logs err and answers with a readable message
func replyFriendlyError(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, command string, err error) {
	logger.FromContext(ctx).Warn(LogMsgCommandFailed, "command", command, "error", err)
	replyText(ctx, s, m, formatFriendlyError(err))
}

func pingText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, _ *Services) {
	replyText(ctx, s, m, fmt.Sprintf(MsgPong, s.HeartbeatLatency().Milliseconds()))
}

func helpText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, svc *Services) {
	replyEmbed(ctx, s, m, helpEmbed(svc.Registry))
}

func balanceText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, svc *Services) {
	balance, err := svc.Economy.Balance(ctx, parseSnowflake(m.Author.ID))
	if err != nil {
		replyFriendlyError(ctx, s, m, "balance", err)
		return
	}
	replyText(ctx, s, m, balanceMessage(balance))
}

func dailyText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, svc *Services) {
	result, err := svc.Economy.Daily(ctx, parseSnowflake(m.Author.ID))
	if err != nil {
		replyFriendlyError(ctx, s, m, "daily", err)
		return
	}
	replyEmbed(ctx, s, m, dailyEmbed(result))
}

func shopText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, svc *Services) {
	items, err := svc.Economy.Shop(ctx)
	if err != nil {
		replyFriendlyError(ctx, s, m, "shop", err)
		return
	}
	replyEmbed(ctx, s, m, shopEmbed(items))
}

func leaderboardText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, _ []string, svc *Services) {
	board, err := svc.Leveling.Leaderboard(ctx, parseSnowflake(m.GuildID), parseSnowflake(m.Author.ID))
	if err != nil {
		replyFriendlyError(ctx, s, m, "leaderboard", err)
		return
	}
	replyEmbed(ctx, s, m, leaderboardEmbed(guildName(s, m.GuildID), board, m.Author))
}
