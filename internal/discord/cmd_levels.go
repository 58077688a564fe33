package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/profile"
)

var leaderboardMedalEmojis = [leaderboardMedals]string{"🥇", "🥈", "🥉"}

// ProfileCommand shows a member's rank card and edits the invoker's cosmetics
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "profile",
		Description:  "View or customise a rank card",
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show a member's rank card",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "member",
						Description: "Member to show (defaults to you)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "color",
				Description: "Change the accent color of your rank card",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "color",
						Description: "Hex value like #FF0000 or a name like blurple",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "background",
				Description: "Change your rank card background, or list the ones you own",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "background",
						Description:  "Background to use, or default to reset",
						Autocomplete: true,
					},
				},
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		sub, opts := subcommand(i)
		switch sub {
		case "view":
			handleProfileView(ctx, s, i, svc, opts)
		case "color":
			handleProfileColor(ctx, s, i, svc, opts)
		case "background":
			handleProfileBackground(ctx, s, i, svc, opts)
		}
	}

	return cmd, handler
}

func handleProfileView(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if !deferResponse(ctx, s, i, false) {
		return
	}

	invoker := getInteractionUser(i)
	target, member := invoker, i.Member
	if opt, ok := optionMap(opts)["member"]; ok {
		target, member = optionUser(i, opt), optionMember(i, opt)
	}
	if target.Bot {
		editContent(ctx, s, i, MsgProfileBot)
		return
	}

	progress, err := svc.Leveling.GetProgress(ctx, parseSnowflake(i.GuildID), parseSnowflake(target.ID))
	if errors.Is(err, domain.ErrNotFound) {
		if target.ID == invoker.ID {
			editContent(ctx, s, i, fmt.Sprintf(MsgNoXPSelf, memberDisplayName(i.Member, invoker)))
		} else {
			editContent(ctx, s, i, fmt.Sprintf(MsgNoXPOther, memberDisplayName(i.Member, invoker)))
		}
		return
	}
	if err != nil {
		respondFriendlyError(ctx, s, i, "profile", err)
		return
	}

	var avatar []byte
	if svc.Avatars != nil {
		avatar, err = svc.Avatars.Fetch(ctx, target.AvatarURL(avatarSize))
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgAvatarFetchFailed, "userID", target.ID, "error", err)
		}
	}

	png, err := svc.Renderer.Render(ctx, profile.Card{
		DisplayName: memberDisplayName(member, target),
		Level:       progress.Level,
		XP:          progress.XP,
		Avatar:      avatar,
		Accent:      progress.AccentColor,
		Background:  progress.BackgroundKey,
	})
	if err != nil {
		respondFriendlyError(ctx, s, i, "profile", err)
		return
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Files: []*discordgo.File{{
			Name:        profileCardFile,
			ContentType: "image/png",
			Reader:      bytes.NewReader(png),
		}},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

func handleProfileColor(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if !deferResponse(ctx, s, i, true) {
		return
	}
	raw := ""
	if opt, ok := optionMap(opts)["color"]; ok {
		raw = opt.StringValue()
	}

	user := getInteractionUser(i)
	c, err := svc.Leveling.SetAccentColor(ctx, parseSnowflake(i.GuildID), parseSnowflake(user.ID), raw)
	if errors.Is(err, domain.ErrInvalidCosmetic) {
		editContent(ctx, s, i, MsgInvalidColor)
		return
	}
	if err != nil {
		respondFriendlyError(ctx, s, i, "profile", err)
		return
	}

	embed := createEmbed(fmt.Sprintf(MsgColorChanged, c), "", int(c), "")
	sendEmbed(ctx, s, i, embed)
}

func handleProfileBackground(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if !deferResponse(ctx, s, i, true) {
		return
	}
	user := getInteractionUser(i)
	userID := parseSnowflake(user.ID)

	key := ""
	if opt, ok := optionMap(opts)["background"]; ok {
		key = strings.ToLower(strings.TrimSpace(opt.StringValue()))
	}
	if key == "" {
		listOwnedBackgrounds(ctx, s, i, svc, user)
		return
	}

	err := svc.Leveling.SetBackground(ctx, parseSnowflake(i.GuildID), userID, key)
	if errors.Is(err, domain.ErrInvalidCosmetic) {
		listOwnedBackgrounds(ctx, s, i, svc, user)
		return
	}
	if err != nil {
		respondFriendlyError(ctx, s, i, "profile", err)
		return
	}

	title := MsgBackgroundReset
	if key != domain.DefaultBackground {
		title = fmt.Sprintf(MsgBackgroundChanged, displayName(key))
	}
	sendEmbed(ctx, s, i, createEmbed(title, "", ColorSuccess, ""))
}

// listOwnedBackgrounds answers with the backgrounds the user may switch to
func listOwnedBackgrounds(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User) {
	owned, err := usableBackgrounds(ctx, svc, parseSnowflake(user.ID))
	if err != nil {
		respondFriendlyError(ctx, s, i, "profile", err)
		return
	}

	description := MsgBackgroundsNone
	if len(owned) > 0 {
		lines := make([]string, 0, len(owned))
		for _, item := range owned {
			lines = append(lines, fmt.Sprintf("`%s` %s", item.Key, item.Name))
		}
		description = strings.Join(lines, "\n")
	}

	embed := createEmbed(MsgBackgroundsTitle, description, ColorInfo, "")
	embed.Author = &discordgo.MessageEmbedAuthor{Name: user.Username, IconURL: user.AvatarURL("")}
	sendEmbed(ctx, s, i, embed)
}

// usableBackgrounds lists owned backgrounds the renderer can still draw
func usableBackgrounds(ctx context.Context, svc *Services, userID int64) ([]domain.Item, error) {
	owned, err := svc.Economy.OwnedBackgrounds(ctx, userID)
	if err != nil {
		return nil, err
	}
	usable := make([]domain.Item, 0, len(owned))
	for _, item := range owned {
		if svc.Backgrounds == nil || svc.Backgrounds.Has(item.Key) {
			usable = append(usable, item)
		}
	}
	return usable, nil
}

// LeaderboardCommand shows the guild's top members and the invoker's own standing
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "leaderboard",
		Description:  "Show the top members of this server",
		DMPermission: boolPtr(false),
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, false) {
			return
		}
		user := getInteractionUser(i)

		board, err := svc.Leveling.Leaderboard(ctx, parseSnowflake(i.GuildID), parseSnowflake(user.ID))
		if err != nil {
			respondFriendlyError(ctx, s, i, "leaderboard", err)
			return
		}
		sendEmbed(ctx, s, i, leaderboardEmbed(guildName(s, i.GuildID), board, user))
	}

	return cmd, handler
}

// leaderboardEmbed lays the board out as three columns: rank, member and level
func leaderboardEmbed(guild string, board *domain.Leaderboard, requester *discordgo.User) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf(MsgLeaderboardTitle, len(board.Entries), guild), "", ColorGold, "")
	if len(board.Entries) == 0 {
		embed.Description = MsgLeaderboardEmpty
	}

	var ranks, members, levels strings.Builder
	for idx, entry := range board.Entries {
		if idx == 0 {
			embed.Description = fmt.Sprintf(MsgLeaderboardTop, entry.UserID)
		}
		ranks.WriteString(rankLabel(entry.Rank) + "\n")
		fmt.Fprintf(&members, "<@%d>\n", entry.UserID)
		levels.WriteString(levelLine(entry.MemberProgress) + "\n")
	}

	switch {
	case board.Self == nil:
		ranks.WriteString("…\n")
		fmt.Fprintf(&members, "**%s**\n", requester.Username)
		levels.WriteString(MsgLeaderboardSelf + "\n")
	case board.Self.Rank > len(board.Entries):
		fmt.Fprintf(&ranks, "…\n#%d\n", board.Self.Rank)
		fmt.Fprintf(&members, "…\n**%s**\n", requester.Username)
		levels.WriteString("…\n" + levelLine(board.Self.MemberProgress) + "\n")
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Rank", Value: ranks.String(), Inline: true},
		{Name: "Member", Value: members.String(), Inline: true},
		{Name: "Level", Value: levels.String(), Inline: true},
	}
	return embed
}

func rankLabel(rank int) string {
	if rank >= 1 && rank <= leaderboardMedals {
		return leaderboardMedalEmojis[rank-1]
	}
	return fmt.Sprintf("#%d", rank)
}

// levelLine renders "Level L (xp/xp needed for L+1)"
func levelLine(p domain.MemberProgress) string {
	return fmt.Sprintf("Level %d (%s/%s)", p.Level, formatNumber(p.XP), formatNumber(leveling.XPRequired(p.Level+1)))
}

// guildName reads the guild name from the state cache
func guildName(s *discordgo.Session, guildID string) string {
	if s.State != nil {
		if g, err := s.State.Guild(guildID); err == nil && g.Name != "" {
			return g.Name
		}
	}
	return MsgThisServer
}

// GiveXPCommand lets the bot owner grant XP outside the message cooldown
func GiveXPCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "givexp",
		Description:              "Grant XP to a member (bot owner only)",
		DMPermission:             boolPtr(false),
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "Member receiving the XP",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "XP to grant",
				Required:    true,
				MinValue:    float64Ptr(1),
				MaxValue:    maxGrantXP,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		invoker := getInteractionUser(i)
		if !svc.isOwner(parseSnowflake(invoker.ID)) {
			respondEphemeral(ctx, s, i, MsgOwnerOnly)
			return
		}
		if !deferResponse(ctx, s, i, true) {
			return
		}

		opts := optionMap(getOptions(i))
		memberOpt, amountOpt := opts["member"], opts["amount"]
		if memberOpt == nil || amountOpt == nil || amountOpt.IntValue() < 1 {
			editContent(ctx, s, i, MsgInvalidInput)
			return
		}
		target := optionUser(i, memberOpt)

		result, err := svc.Leveling.GrantXP(ctx, parseSnowflake(i.GuildID), parseSnowflake(target.ID), amountOpt.IntValue())
		if err != nil {
			respondFriendlyError(ctx, s, i, "givexp", err)
			return
		}
		logger.FromContext(ctx).Info(LogMsgXPGranted, "targetID", target.ID, "amount", amountOpt.IntValue(), "reason", defaultGiveXPReason)

		editContent(ctx, s, i, fmt.Sprintf(MsgGiveXP, formatNumber(amountOpt.IntValue()),
			memberDisplayName(optionMember(i, memberOpt), target), result.NewLevel))
	}

	return cmd, handler
}
