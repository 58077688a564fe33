package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/blacklist"
	"github.com/osse101/MinesocBot_Go/internal/domain"
)

func blacklistGroup(kind blacklist.Kind) *discordgo.ApplicationCommandOption {
	idOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "Discord id of the " + string(kind),
			Required:    true,
		}
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
		Name:        string(kind),
		Description: "Manage the " + string(kind) + " blacklist",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Blacklist a " + string(kind),
				Options: []*discordgo.ApplicationCommandOption{
					idOption(),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Why it is blacklisted",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove a " + string(kind) + " from the blacklist",
				Options:     []*discordgo.ApplicationCommandOption{idOption()},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List blacklisted " + string(kind) + "s",
			},
		},
	}
}

// BlacklistCommand manages the guild and user blacklists (bot owner only)
func BlacklistCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "blacklist",
		Description:              "Manage the blacklists (bot owner only)",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
		Options: []*discordgo.ApplicationCommandOption{
			blacklistGroup(blacklist.KindGuild),
			blacklistGroup(blacklist.KindUser),
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !svc.isOwner(parseSnowflake(getInteractionUser(i).ID)) {
			respondEphemeral(ctx, s, i, MsgOwnerOnly)
			return
		}
		if !deferResponse(ctx, s, i, true) {
			return
		}

		group, groupOpts := subcommand(i)
		kind := blacklist.Kind(group)
		if (kind != blacklist.KindGuild && kind != blacklist.KindUser) || len(groupOpts) == 0 {
			editContent(ctx, s, i, MsgInvalidInput)
			return
		}
		action := groupOpts[0]
		args := optionMap(action.Options)

		var id int64
		if opt, ok := args["id"]; ok {
			id = parseSnowflake(strings.TrimSpace(opt.StringValue()))
		}
		if action.Name != "list" && id <= 0 {
			editContent(ctx, s, i, MsgInvalidID)
			return
		}

		switch action.Name {
		case "add":
			reason := ""
			if opt, ok := args["reason"]; ok {
				reason = opt.StringValue()
			}
			if err := svc.Blacklist.Add(ctx, kind, id, reason); err != nil {
				respondFriendlyError(ctx, s, i, "blacklist", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgBlacklistAdded, kind, id))
		case "remove":
			removed, err := svc.Blacklist.Remove(ctx, kind, id)
			if err != nil {
				respondFriendlyError(ctx, s, i, "blacklist", err)
				return
			}
			if !removed {
				editContent(ctx, s, i, fmt.Sprintf(MsgBlacklistMissing, kind, id))
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgBlacklistRemoved, kind, id))
		default:
			entries, err := svc.Blacklist.List(ctx, kind)
			if err != nil {
				respondFriendlyError(ctx, s, i, "blacklist", err)
				return
			}
			sendEmbed(ctx, s, i, blacklistEmbed(kind, entries))
		}
	}

	return cmd, handler
}

func blacklistEmbed(kind blacklist.Kind, entries []domain.BlacklistEntry) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf(MsgBlacklistTitle, displayName(string(kind))), MsgBlacklistEmpty, ColorNeutral, FooterMinesocOwner)
	if len(entries) == 0 {
		return embed
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "`%d`", e.ID)
		if e.Reason != "" {
			fmt.Fprintf(&sb, " %s", e.Reason)
		}
		sb.WriteString("\n")
	}
	embed.Description = sb.String()
	return embed
}
