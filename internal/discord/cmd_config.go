package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

var manageGuild = int64Ptr(discordgo.PermissionManageGuild)

// canManageGuild reports whether the invoker may change guild settings.
// The bot owner always may.
func canManageGuild(i *discordgo.InteractionCreate, svc *Services) bool {
	if svc.isOwner(parseSnowflake(getInteractionUser(i).ID)) {
		return true
	}
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageGuild != 0
}

func enabledOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "enabled",
				Description: "On or off",
				Required:    true,
			},
		},
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}

func enabledVerb(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// PersistenceCommand toggles XP gain and level-up announcements for the guild
func PersistenceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "persistence",
		Description:              "Configure the level system of this server",
		DMPermission:             boolPtr(false),
		DefaultMemberPermissions: manageGuild,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show the current level settings",
			},
			enabledOption("xp", "Turn XP gain on or off"),
			enabledOption("levelup", "Turn level-up messages on or off"),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !canManageGuild(i, svc) {
			respondEphemeral(ctx, s, i, MsgManageGuildRequired)
			return
		}
		if !deferResponse(ctx, s, i, false) {
			return
		}
		guildID := parseSnowflake(i.GuildID)
		user := getInteractionUser(i)
		sub, opts := subcommand(i)

		var enabled bool
		if opt, ok := optionMap(opts)["enabled"]; ok {
			enabled = opt.BoolValue()
		}

		switch sub {
		case "xp":
			if err := svc.Guilds.SetXPEnabled(ctx, guildID, enabled); err != nil {
				respondFriendlyError(ctx, s, i, "persistence", err)
				return
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgXPToggled, user.Username, enabledVerb(enabled)), ColorSuccess, ""))
		case "levelup":
			if err := svc.Guilds.SetLevelupMessages(ctx, guildID, enabled); err != nil {
				respondFriendlyError(ctx, s, i, "persistence", err)
				return
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgLevelupToggled, user.Username, enabledVerb(enabled)), ColorSuccess, ""))
		default:
			cfg, err := svc.Guilds.Get(ctx, guildID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "persistence", err)
				return
			}
			body := fmt.Sprintf(MsgPersistenceBody, onOff(cfg.XPEnabled), onOff(cfg.LevelupMessagesEnabled))
			sendEmbed(ctx, s, i, createEmbed(fmt.Sprintf(MsgPersistenceTitle, guildName(s, i.GuildID)), body, ColorNeutral, ""))
		}
	}

	return cmd, handler
}

// PrefixCommand shows and changes the guild's text command prefix
func PrefixCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "prefix",
		Description:  "Configure the prefix of this server",
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show the current prefix",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Change the prefix",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "prefix",
						Description: "New prefix",
						Required:    true,
						MaxLength:   domain.MaxPrefixLength,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "reset",
				Description: "Reset the prefix to the default one",
			},
			enabledOption("mention", "Allow the bot's mention to be used as prefix"),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		sub, opts := subcommand(i)
		if sub != "show" && !canManageGuild(i, svc) {
			respondEphemeral(ctx, s, i, MsgManageGuildRequired)
			return
		}
		if !deferResponse(ctx, s, i, false) {
			return
		}
		guildID := parseSnowflake(i.GuildID)
		args := optionMap(opts)

		switch sub {
		case "set":
			prefix := ""
			if opt, ok := args["prefix"]; ok {
				prefix = opt.StringValue()
			}
			if err := svc.Guilds.SetPrefix(ctx, guildID, prefix); err != nil {
				respondFriendlyError(ctx, s, i, "prefix", err)
				return
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgPrefixSet, prefix), ColorSuccess, ""))
		case "reset":
			cfg, err := svc.Guilds.Get(ctx, guildID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "prefix", err)
				return
			}
			if cfg.Prefix == nil {
				prefix, _ := svc.Guilds.EffectivePrefix(ctx, guildID)
				sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgPrefixAlreadyDefault, prefix), ColorError, ""))
				return
			}
			if err := svc.Guilds.ResetPrefix(ctx, guildID); err != nil {
				respondFriendlyError(ctx, s, i, "prefix", err)
				return
			}
			prefix, _ := svc.Guilds.EffectivePrefix(ctx, guildID)
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgPrefixReset, prefix), ColorSuccess, ""))
		case "mention":
			enabled := false
			if opt, ok := args["enabled"]; ok {
				enabled = opt.BoolValue()
			}
			if err := svc.Guilds.SetMentionPrefix(ctx, guildID, enabled); err != nil {
				respondFriendlyError(ctx, s, i, "prefix", err)
				return
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(MsgMentionToggled, enabledVerb(enabled)), ColorSuccess, ""))
		default:
			cfg, err := svc.Guilds.Get(ctx, guildID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "prefix", err)
				return
			}
			prefix, _ := svc.Guilds.EffectivePrefix(ctx, guildID)
			embed := createEmbed("", "", ColorNeutral, fmt.Sprintf(MsgPrefixFooter, domain.MaxPrefixLength))
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Value", Value: "`" + prefix + "`", Inline: true},
				{Name: "Mentionable", Value: onOff(cfg.MentionPrefix), Inline: true},
			}
			sendEmbed(ctx, s, i, embed)
		}
	}

	return cmd, handler
}

// CommandToggleCommand enables and disables commands per guild
func CommandToggleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	nameOption := func() []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Command name",
				Required:     true,
				Autocomplete: true,
			},
		}
	}
	cmd := &discordgo.ApplicationCommand{
		Name:                     "command",
		Description:              "Enable or disable commands in this server",
		DMPermission:             boolPtr(false),
		DefaultMemberPermissions: manageGuild,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disable",
				Description: "Disable a command",
				Options:     nameOption(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "enable",
				Description: "Enable a disabled command",
				Options:     nameOption(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List the disabled commands",
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !canManageGuild(i, svc) {
			respondEphemeral(ctx, s, i, MsgManageGuildRequired)
			return
		}
		if !deferResponse(ctx, s, i, false) {
			return
		}
		guildID := parseSnowflake(i.GuildID)
		sub, opts := subcommand(i)
		name := ""
		if opt, ok := optionMap(opts)["name"]; ok {
			name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(opt.StringValue()), "/"))
		}

		switch sub {
		case "disable":
			changed, err := svc.Guilds.DisableCommand(ctx, guildID, name)
			if err != nil {
				respondFriendlyError(ctx, s, i, "command", err)
				return
			}
			msg := MsgCommandDisabled
			if !changed {
				msg = MsgCommandAlreadyDisabled
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(msg, name), ColorSuccess, ""))
		case "enable":
			changed, err := svc.Guilds.EnableCommand(ctx, guildID, name)
			if err != nil {
				respondFriendlyError(ctx, s, i, "command", err)
				return
			}
			msg := MsgCommandEnabled
			if !changed {
				msg = MsgCommandNotDisabled
			}
			sendEmbed(ctx, s, i, createEmbed("", fmt.Sprintf(msg, name), ColorSuccess, ""))
		default:
			disabled, err := svc.Guilds.DisabledCommands(ctx, guildID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "command", err)
				return
			}
			description := MsgNoDisabledCommands
			if len(disabled) > 0 {
				lines := make([]string, 0, len(disabled))
				for _, c := range disabled {
					lines = append(lines, "`/"+c+"`")
				}
				description = strings.Join(lines, "\n")
			}
			sendEmbed(ctx, s, i, createEmbed(MsgDisabledCommandsTitle, description, ColorNeutral, ""))
		}
	}

	return cmd, handler
}
