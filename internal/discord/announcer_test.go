package discord

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
)

type sentMessage struct {
	channelID string
	data      *discordgo.MessageSend
}

type fakeSender struct {
	mu       sync.Mutex
	sent     []sentMessage
	failFor  map[string]bool
	dmFailed bool
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[channelID] {
		return nil, errors.New("missing access")
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, data: data})
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSender) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.dmFailed {
		return nil, errors.New("cannot send messages to this user")
	}
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func levelUp(guildID int64, level int) event.Event {
	return event.NewLevelUpEvent(domain.LevelUpPayload{
		GuildID:     guildID,
		ChannelID:   42,
		UserID:      7,
		DisplayName: "Tester",
		OldLevel:    level - 1,
		NewLevel:    level,
	})
}

func TestAnnouncer_PostsLevelUp(t *testing.T) {
	sender := &fakeSender{}
	a := NewAnnouncer(sender, 1, 3)

	require.NoError(t, a.HandleLevelUp(context.Background(), levelUp(1, 5)))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "42", sender.sent[0].channelID)
	assert.Equal(t, "🎉 **Tester** reached level **5**!", sender.sent[0].data.Content)
	assert.NotNil(t, sender.sent[0].data.AllowedMentions, "announcements must not ping")
}

func TestAnnouncer_ThrottlesPerGuild(t *testing.T) {
	sender := &fakeSender{}
	a := NewAnnouncer(sender, 0.001, 2)

	for level := 2; level <= 5; level++ {
		require.NoError(t, a.HandleLevelUp(context.Background(), levelUp(1, level)))
	}
	require.NoError(t, a.HandleLevelUp(context.Background(), levelUp(2, 2)))

	assert.Len(t, sender.sent, 3, "two from the busy guild, one from the quiet one")
}

func TestAnnouncer_SendFailureIsNotRetried(t *testing.T) {
	sender := &fakeSender{failFor: map[string]bool{"42": true}}
	a := NewAnnouncer(sender, 1, 1)

	assert.NoError(t, a.HandleLevelUp(context.Background(), levelUp(1, 3)))
}

func TestAnnouncer_SubscribesToBus(t *testing.T) {
	sender := &fakeSender{}
	bus := event.NewMemoryBus()
	NewAnnouncer(sender, 1, 1).Subscribe(bus)

	require.NoError(t, bus.Publish(context.Background(), levelUp(1, 2)))

	assert.Len(t, sender.sent, 1)
}

func TestAnnouncer_DecodesReplayedPayload(t *testing.T) {
	sender := &fakeSender{}
	a := NewAnnouncer(sender, 1, 1)

	evt := event.Event{Type: event.LevelUp, Payload: map[string]interface{}{
		"guild_id":     "1",
		"channel_id":   "42",
		"user_id":      "7",
		"display_name": "Replayed",
		"new_level":    float64(9),
	}}
	require.NoError(t, a.HandleLevelUp(context.Background(), evt))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].data.Content, "Replayed")
}
