package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	username := ""
	if r.User != nil {
		username = r.User.Username
	}
	logger.FromContext(logger.NewRequestContext(context.Background())).Info(LogMsgBotReady,
		"user", username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := b.eventContext()
	defer cancel()
	defer recoverHandler(ctx, "interactionCreate")

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(ctx, s, i, b.Services)
	case discordgo.InteractionApplicationCommandAutocomplete:
		handleAutocomplete(ctx, s, i, b.Services)
	}
}

// messageCreate dispatches prefixed commands and feeds every other guild message
// into the XP hook. Command invocations never earn XP.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.WebhookID != "" || m.GuildID == "" {
		return
	}
	ctx, cancel := b.eventContext()
	defer cancel()
	defer recoverHandler(ctx, "messageCreate")
	log := logger.FromContext(ctx)

	guildID := parseSnowflake(m.GuildID)
	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}

	settings, err := b.Services.Guilds.Get(ctx, guildID)
	if err != nil {
		log.Warn(LogMsgPrefixLookupFailed, "guildID", guildID, "error", err)
		return
	}
	prefix, err := b.Services.Guilds.EffectivePrefix(ctx, guildID)
	if err != nil {
		log.Warn(LogMsgPrefixLookupFailed, "guildID", guildID, "error", err)
		return
	}

	if !m.Author.Bot && guildconfig.IsBareMention(m.Content, botID) {
		if _, err := s.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf(MsgPrefixReply, prefix), m.Reference()); err != nil {
			log.Warn(LogMsgRespondFailed, "channelID", m.ChannelID, "error", err)
		}
		return
	}

	if !m.Author.Bot {
		if inv, ok := guildconfig.ParseTextInvocation(m.Content, prefix, settings.MentionPrefix, botID); ok {
			if b.Registry.HandleText(ctx, s, m, inv, b.Services) {
				return
			}
		}
	}

	msg := domain.MessageEvent{
		GuildID:     guildID,
		ChannelID:   parseSnowflake(m.ChannelID),
		UserID:      parseSnowflake(m.Author.ID),
		DisplayName: memberDisplayName(m.Member, m.Author),
		IsBot:       m.Author.Bot,
		IsCommand:   guildconfig.IsCommandMessage(m.Content, prefix, settings.MentionPrefix, botID, b.Registry.Has),
		Timestamp:   m.Timestamp,
	}
	if _, err := b.Services.Leveling.HandleMessage(ctx, msg); err != nil {
		log.Warn(LogMsgAwardFailed, "guildID", guildID, "userID", msg.UserID, "error", err)
	}
}

// guildCreate screens every guild the bot joins or reconnects to. A blacklisted
// guild's owner is told why by DM before the bot leaves.
func (b *Bot) guildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if b.gate == nil || g.Guild == nil || g.Unavailable {
		return
	}
	ctx, cancel := b.eventContext()
	defer cancel()
	defer recoverHandler(ctx, "guildCreate")
	log := logger.FromContext(ctx)

	guildID := parseSnowflake(g.ID)
	decision := b.gate.Check(ctx, guildID)
	if !decision.Blacklisted {
		return
	}
	log.Info(LogMsgGuildGateBlocked, "guildID", guildID, "name", g.Name)

	notified := notifyBlacklistedOwner(s, g.Guild, decision.Reason)
	if !notified {
		log.Warn(LogMsgOwnerNotifyFailed, "guildID", guildID, "ownerID", g.OwnerID)
	}
	if err := s.GuildLeave(g.ID); err != nil {
		log.Error(LogMsgGuildLeaveFailed, "guildID", guildID, "error", err)
		return
	}
	b.gate.Left(ctx, guildID, parseSnowflake(g.OwnerID), decision.Reason, notified)
}

// notifyBlacklistedOwner DMs the guild owner and reports whether it got through
func notifyBlacklistedOwner(s *discordgo.Session, g *discordgo.Guild, reason string) bool {
	if g.OwnerID == "" {
		return false
	}
	ch, err := s.UserChannelCreate(g.OwnerID)
	if err != nil {
		return false
	}
	embed := createEmbed(MsgGuildBlacklistedTitle, fmt.Sprintf(MsgGuildBlacklistedBody, g.Name), ColorError, "")
	if reason != "" {
		embed.Fields = []*discordgo.MessageEmbedField{{Name: MsgGuildBlacklistedField, Value: reason}}
	}
	_, err = s.ChannelMessageSendEmbed(ch.ID, embed)
	return err == nil
}
