package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check the bot's gateway latency",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		respondEphemeral(ctx, s, i, fmt.Sprintf(MsgPong, s.HeartbeatLatency().Milliseconds()))
	}

	return cmd, handler
}

// HelpCommand lists every registered command with its description
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "List the bot's commands",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		embed := helpEmbed(svc.Registry)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
		}
	}

	return cmd, handler
}

// helpEmbed lists every slash command and marks the ones that also answer to the prefix
func helpEmbed(registry *CommandRegistry) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, def := range registry.Definitions() {
		fmt.Fprintf(&sb, "`/%s` %s", def.Name, def.Description)
		if registry.HasText(def.Name) {
			sb.WriteString(MsgHelpTextMarker)
		}
		sb.WriteString("\n")
		for _, opt := range def.Options {
			if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
				fmt.Fprintf(&sb, "└ `%s` %s\n", opt.Name, opt.Description)
			}
		}
	}
	return createEmbed(MsgHelpTitle, sb.String(), ColorBlurple, MsgHelpFooter)
}
