package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/tags"
)

func tagNameOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

func tagContentOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "content",
		Description: description,
		Required:    true,
		MaxLength:   domain.MaxTagContentLength,
	}
}

// TagCommand stores and recalls named snippets of text per server
func TagCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "tag",
		Description:  "Store and recall snippets of text",
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Post a tag",
				Options:     []*discordgo.ApplicationCommandOption{tagNameOption("Tag to post")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "raw",
				Description: "Post a tag with its markdown escaped",
				Options:     []*discordgo.ApplicationCommandOption{tagNameOption("Tag to post")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create a tag",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the new tag",
						Required:    true,
						MaxLength:   domain.MaxTagNameLength,
					},
					tagContentOption("Text of the tag"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "edit",
				Description: "Change the text of one of your tags",
				Options: []*discordgo.ApplicationCommandOption{
					tagNameOption("Tag to edit"),
					tagContentOption("New text"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rename",
				Description: "Rename one of your tags",
				Options: []*discordgo.ApplicationCommandOption{
					tagNameOption("Tag to rename"),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "new_name",
						Description: "New name",
						Required:    true,
						MaxLength:   domain.MaxTagNameLength,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete one of your tags",
				Options:     []*discordgo.ApplicationCommandOption{tagNameOption("Tag to delete")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List the tags a member owns",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "member",
						Description: "Whose tags to list, yours by default",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "all",
				Description: "List every tag in this server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "leaderboard",
				Description: "Show the most used and the oldest tags",
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, false) {
			return
		}
		guildID := parseSnowflake(i.GuildID)
		userID := parseSnowflake(getInteractionUser(i).ID)
		sub, opts := subcommand(i)
		args := optionMap(opts)
		str := func(name string) string {
			if opt, ok := args[name]; ok {
				return opt.StringValue()
			}
			return ""
		}

		switch sub {
		case "show":
			tag, err := svc.Tags.Show(ctx, guildID, str("name"))
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			sendEmbed(ctx, s, i, tagEmbed(tag))
		case "raw":
			tag, err := svc.Tags.Peek(ctx, guildID, str("name"))
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			editContent(ctx, s, i, truncateRunes(escapeMarkdown(tag.Content), maxMessageLength))
		case "create":
			tag, err := svc.Tags.Create(ctx, guildID, userID, str("name"), str("content"))
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgTagCreated, tag.Name))
		case "edit":
			if err := svc.Tags.Edit(ctx, guildID, userID, str("name"), str("content")); err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgTagEdited, tags.NormalizeName(str("name"))))
		case "rename":
			if err := svc.Tags.Rename(ctx, guildID, userID, str("name"), str("new_name")); err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgTagRenamed, tags.NormalizeName(str("name")), tags.NormalizeName(str("new_name"))))
		case "delete":
			if err := svc.Tags.Delete(ctx, guildID, userID, str("name")); err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgTagDeleted, tags.NormalizeName(str("name"))))
		case "list":
			member := getInteractionUser(i)
			if opt, ok := args["member"]; ok {
				member = optionUser(i, opt)
			}
			owned, err := svc.Tags.Owned(ctx, guildID, parseSnowflake(member.ID))
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			names := make([]string, len(owned))
			for idx, t := range owned {
				names[idx] = t.Name
			}
			empty := MsgTagListNoneSelf
			if member.ID != getInteractionUser(i).ID {
				empty = fmt.Sprintf(MsgTagListNoneOther, member.ID)
			}
			sendEmbed(ctx, s, i, tagListEmbed(names, empty))
		case "all":
			names, err := svc.Tags.Names(ctx, guildID, "", tags.MaxListed)
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			sendEmbed(ctx, s, i, tagListEmbed(names, MsgTagsNone))
		case "leaderboard":
			board, err := svc.Tags.Board(ctx, guildID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "tag", err)
				return
			}
			sendEmbed(ctx, s, i, tagBoardEmbed(guildName(s, i.GuildID), board))
		}
	}

	return cmd, handler
}

// tagEmbed shows the tag's text, with its first image link rendered as the embed image
func tagEmbed(tag *domain.Tag) *discordgo.MessageEmbed {
	image, rest := tags.SplitImage(tag.Content)
	embed := createEmbed("", rest, ColorNeutral, MsgTagFooter)
	embed.Timestamp = tag.CreatedAt.Format(time.RFC3339)
	if image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: image}
	}
	return embed
}

func tagListEmbed(names []string, empty string) *discordgo.MessageEmbed {
	if len(names) == 0 {
		return createEmbed(MsgTagListTitle, empty, ColorInfo, "")
	}
	var sb strings.Builder
	for idx, name := range names {
		fmt.Fprintf(&sb, "%d. %s\n", idx+1, name)
	}
	return createEmbed(MsgTagListTitle, sb.String(), ColorBlurple, "")
}

func tagBoardEmbed(guild string, board *domain.TagBoard) *discordgo.MessageEmbed {
	if len(board.MostUsed) == 0 {
		return createEmbed("", MsgTagsNone, ColorError, "")
	}
	var usages, dates strings.Builder
	for idx, t := range board.MostUsed {
		fmt.Fprintf(&usages, MsgTagBoardUsages, rankLabel(idx+1), t.Name, t.OwnerID, t.Usages, plural(t.Usages, "usage", "usages"))
	}
	for idx, t := range board.Oldest {
		fmt.Fprintf(&dates, MsgTagBoardDate, rankLabel(idx+1), t.Name, t.OwnerID, t.CreatedAt.Format(tagDateLayout))
	}

	embed := createEmbed(fmt.Sprintf(MsgTagBoardTitle, guild), "", ColorNeutral, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Usages", Value: usages.String()},
		{Name: "Date", Value: dates.String()},
	}
	return embed
}

// tagText posts a tag by name: "tag <name>" or "tag raw <name>"
func tagText(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string, svc *Services) {
	guildID := parseSnowflake(m.GuildID)
	switch {
	case len(args) == 0:
		replyText(ctx, s, m, MsgTagUsage)
	case len(args) > 1 && strings.EqualFold(args[0], "raw"):
		tag, err := svc.Tags.Peek(ctx, guildID, args[1])
		if err != nil {
			replyFriendlyError(ctx, s, m, "tag", err)
			return
		}
		replyText(ctx, s, m, truncateRunes(escapeMarkdown(tag.Content), maxMessageLength))
	default:
		tag, err := svc.Tags.Show(ctx, guildID, args[0])
		if err != nil {
			replyFriendlyError(ctx, s, m, "tag", err)
			return
		}
		replyEmbed(ctx, s, m, tagEmbed(tag))
	}
}
