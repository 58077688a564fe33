package discord

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// ReminderSender is the part of the session reminder delivery needs
type ReminderSender interface {
	MessageSender
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// ReminderDeliverer posts due reminders in the channel they were set in,
// falling back to a direct message when that fails
type ReminderDeliverer struct {
	sender ReminderSender
}

// NewReminderDeliverer creates a deliverer on top of the gateway session
func NewReminderDeliverer(sender ReminderSender) *ReminderDeliverer {
	return &ReminderDeliverer{sender: sender}
}

// DeliverReminder implements reminder.Deliverer
func (d *ReminderDeliverer) DeliverReminder(ctx context.Context, r domain.Reminder) (bool, error) {
	userID := strconv.FormatInt(r.UserID, 10)
	embed := createEmbed(MsgReminderTitle, r.Message, ColorBlurple, "")
	embed.Timestamp = r.CreatedAt.Format(time.RFC3339)

	if r.ChannelID != 0 {
		_, err := d.sender.ChannelMessageSendComplex(strconv.FormatInt(r.ChannelID, 10), &discordgo.MessageSend{
			Content: "<@" + userID + ">",
			Embeds:  []*discordgo.MessageEmbed{embed},
			AllowedMentions: &discordgo.MessageAllowedMentions{
				Users: []string{userID},
			},
		})
		if err == nil {
			return false, nil
		}
		logger.FromContext(ctx).Info(LogMsgReminderDMFallback, "reminderID", r.ID, "channelID", r.ChannelID, "error", err)
	}

	ch, err := d.sender.UserChannelCreate(userID)
	if err != nil {
		return true, fmt.Errorf(ErrMsgDeliverReminder, r.ID, err)
	}
	if _, err := d.sender.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		return true, fmt.Errorf(ErrMsgDeliverReminder, r.ID, err)
	}
	return true, nil
}
