package discord

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/reminder"
)

// RemindCommand creates, lists and deletes the invoker's reminders
func RemindCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "remind",
		Description: "Set reminders for yourself",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Create a reminder",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "when",
						Description: "When to remind you, like \"in 2 hours\", \"tomorrow at 5pm\" or \"90m\"",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "What to remind you about",
						Required:    true,
						MaxLength:   reminder.MaxMessageLength,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "repeat",
						Description: "Repeat interval, like 24h",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List your reminders",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete one of your reminders",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: "Reminder id from /remind list",
						Required:    true,
						MinValue:    float64Ptr(1),
					},
				},
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, true) {
			return
		}
		userID := parseSnowflake(getInteractionUser(i).ID)
		sub, opts := subcommand(i)
		args := optionMap(opts)

		switch sub {
		case "set":
			req := reminder.CreateRequest{
				UserID:    userID,
				GuildID:   parseSnowflake(i.GuildID),
				ChannelID: parseSnowflake(i.ChannelID),
			}
			if opt, ok := args["when"]; ok {
				req.When = opt.StringValue()
			}
			if opt, ok := args["message"]; ok {
				req.Message = opt.StringValue()
			}
			if opt, ok := args["repeat"]; ok && strings.TrimSpace(opt.StringValue()) != "" {
				every, err := time.ParseDuration(strings.TrimSpace(opt.StringValue()))
				if err != nil || every < reminder.MinRepeat || every > reminder.MaxRepeat {
					editContent(ctx, s, i, fmt.Sprintf(MsgReminderRepeat, reminder.MinRepeat, formatDuration(reminder.MaxRepeat)))
					return
				}
				req.Repeat = every
			}

			rem, err := svc.Reminders.Create(ctx, req)
			if err != nil {
				respondFriendlyError(ctx, s, i, "remind", err)
				return
			}
			msg := fmt.Sprintf(MsgReminderCreated, rem.ID, discordTimestamp(rem.RemindAt))
			if rem.Repeats() {
				msg += fmt.Sprintf(MsgReminderRepeats, formatDuration(rem.RepeatEvery))
			}
			editContent(ctx, s, i, msg)
		case "delete":
			var id int64
			if opt, ok := args["id"]; ok {
				id = opt.IntValue()
			}
			if err := svc.Reminders.Delete(ctx, userID, id); err != nil {
				respondFriendlyError(ctx, s, i, "remind", err)
				return
			}
			editContent(ctx, s, i, fmt.Sprintf(MsgReminderDeleted, id))
		default:
			reminders, err := svc.Reminders.List(ctx, userID)
			if err != nil {
				respondFriendlyError(ctx, s, i, "remind", err)
				return
			}
			sendEmbed(ctx, s, i, remindersEmbed(reminders))
		}
	}

	return cmd, handler
}

func remindersEmbed(reminders []domain.Reminder) *discordgo.MessageEmbed {
	embed := createEmbed(MsgRemindersTitle, MsgRemindersNone, ColorBlurple, fmt.Sprintf(MsgRemindersFooter, len(reminders), domain.ReminderCap))
	if len(reminders) == 0 {
		return embed
	}
	var sb strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&sb, "`#%d` **%s** %s", r.ID, truncate(r.Message, reminderPreviewLength), discordTimestamp(r.RemindAt))
		if r.Repeats() {
			fmt.Fprintf(&sb, " 🔁 %s", formatDuration(r.RepeatEvery))
		}
		sb.WriteString("\n")
	}
	embed.Description = sb.String()
	return embed
}

// discordTimestamp renders t as a relative timestamp every client localises
func discordTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
