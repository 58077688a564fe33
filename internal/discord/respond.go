package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/cooldown"
	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// deferResponse acknowledges an interaction with a deferred message.
// Required before store work that might exceed Discord's 3 second window.
// Returns false if deferral failed and the handler should return.
func deferResponse(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
		return false
	}
	return true
}

// respondEphemeral answers immediately with a message only the invoker sees
func respondEphemeral(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// editContent replaces the deferred response with plain text
func editContent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError logs err and replaces the deferred response with a readable message
func respondFriendlyError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	logger.FromContext(ctx).Warn(LogMsgCommandFailed, "command", command, "error", err)
	editContent(ctx, s, i, formatFriendlyError(err))
}

// formatFriendlyError maps domain errors to messages users can act on.
// Anything unrecognised becomes the generic message so internals never leak.
func formatFriendlyError(err error) string {
	var cd cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &cd):
		return fmt.Sprintf("%s\nWait for: **%s**", MsgCooldownActive, formatDuration(cd.Remaining))
	case errors.Is(err, domain.ErrStoreUnavailable):
		return MsgStoreUnavailable
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrAlreadyOwned):
		return MsgAlreadyOwned
	case errors.Is(err, domain.ErrInvalidCosmetic):
		return MsgInvalidCosmetic
	case errors.Is(err, domain.ErrInvalidPrefix):
		return MsgInvalidPrefix
	case errors.Is(err, domain.ErrCommandNotToggleable):
		return MsgCommandToggleGuard
	case errors.Is(err, domain.ErrUnknownCommand):
		return MsgUnknownCommand
	case errors.Is(err, domain.ErrReminderCap):
		return MsgReminderCap
	case errors.Is(err, domain.ErrReminderTimeUnparsable):
		return MsgReminderTime
	case errors.Is(err, domain.ErrReminderInPast):
		return MsgReminderPast
	case errors.Is(err, domain.ErrOnCooldown):
		return MsgCooldownActive
	case errors.Is(err, domain.ErrTagExists):
		return MsgTagExists
	case errors.Is(err, domain.ErrTagNotOwned):
		return MsgTagNotOwned
	case errors.Is(err, domain.ErrTagNameInvalid):
		return MsgTagNameInvalid
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	default:
		return MsgGenericError
	}
}

// createEmbed creates a standard embed. An empty footerText uses FooterMinesoc.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterMinesoc
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
