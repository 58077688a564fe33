package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/poll"
)

// PollCommand posts reaction polls and counts their votes
func PollCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "poll",
		Description:  "Run a reaction poll",
		DMPermission: boolPtr(false),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Post a poll in this channel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "question",
						Description: "What to ask",
						Required:    true,
						MaxLength:   256,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "options",
						Description: "2-10 options separated by |",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "tally",
				Description: "Count the votes of a poll in this channel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "poll_id",
						Description: "The Poll ID shown under the poll",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		sub, opts := subcommand(i)
		args := optionMap(opts)
		str := func(name string) string {
			if opt, ok := args[name]; ok {
				return opt.StringValue()
			}
			return ""
		}

		switch sub {
		case "create":
			if !deferResponse(ctx, s, i, true) {
				return
			}
			p, err := poll.New(str("question"), str("options"))
			if err != nil {
				editContent(ctx, s, i, MsgPollInvalid)
				return
			}
			if err := postPoll(ctx, s, i.ChannelID, p); err != nil {
				respondFriendlyError(ctx, s, i, "poll", err)
				return
			}
			editContent(ctx, s, i, MsgPollCreated)
		case "tally":
			if !deferResponse(ctx, s, i, false) {
				return
			}
			embed, err := tallyPoll(s, i.ChannelID, strings.TrimSpace(str("poll_id")))
			if err != nil {
				respondFriendlyError(ctx, s, i, "poll", err)
				return
			}
			if embed == nil {
				editContent(ctx, s, i, MsgPollNotAPoll)
				return
			}
			sendEmbed(ctx, s, i, embed)
		}
	}

	return cmd, handler
}

// postPoll sends the poll, stamps its own message id into the footer and seeds
// one reaction per option
func postPoll(ctx context.Context, s *discordgo.Session, channelID string, p *poll.Poll) error {
	embed := createEmbed(p.Question, p.Description(), ColorInfo, poll.FooterPrefix+"…")
	msg, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return fmt.Errorf(ErrMsgPostPoll, err)
	}

	embed.Footer.Text = poll.FooterPrefix + msg.ID
	if _, err := s.ChannelMessageEditEmbed(channelID, msg.ID, embed); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPollSeedFailed, "messageID", msg.ID, "error", err)
	}
	for _, o := range p.Options {
		if err := s.MessageReactionAdd(channelID, msg.ID, o.Emoji); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPollSeedFailed, "messageID", msg.ID, "error", err)
		}
	}
	return nil
}

// tallyPoll reads a posted poll back and counts its votes. It returns nil when the
// message is not a poll this bot posted.
func tallyPoll(s *discordgo.Session, channelID, messageID string) (*discordgo.MessageEmbed, error) {
	if parseSnowflake(messageID) == 0 {
		return nil, nil
	}
	msg, err := s.ChannelMessage(channelID, messageID)
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchPoll, err)
	}
	if msg.Author == nil || s.State == nil || s.State.User == nil || msg.Author.ID != s.State.User.ID || len(msg.Embeds) == 0 {
		return nil, nil
	}
	posted := msg.Embeds[0]
	if posted.Footer == nil || !strings.HasPrefix(posted.Footer.Text, poll.FooterPrefix) {
		return nil, nil
	}

	counts := make(map[string]int, len(msg.Reactions))
	mine := make(map[string]bool, len(msg.Reactions))
	for _, r := range msg.Reactions {
		if r.Emoji == nil {
			continue
		}
		counts[r.Emoji.Name] += r.Count
		mine[r.Emoji.Name] = r.Me
	}
	results := poll.Tally(poll.ParseDescription(posted.Description), counts, func(emoji string) bool { return mine[emoji] })

	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, MsgPollResultLine, r.Emoji, r.Text, r.Votes, plural(int64(r.Votes), "vote", "votes"))
	}
	return createEmbed(fmt.Sprintf(MsgPollResultTitle, posted.Title), sb.String(), ColorInfo, ""), nil
}
