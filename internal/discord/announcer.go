package discord

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// Announcement limiter bounds
const (
	DefaultAnnounceRate  = 1.0
	DefaultAnnounceBurst = 3
	maxAnnounceGuilds    = 10000
	announceLimiterTTL   = 10 * time.Minute
)

// MessageSender posts a message to a channel
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts level-up messages. Each guild gets its own token bucket so
// a busy server cannot flood its channels.
type Announcer struct {
	sender   MessageSender
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	limiters *expirable.LRU[int64, *rate.Limiter]
}

// NewAnnouncer creates an announcer allowing perSecond announcements per guild
func NewAnnouncer(sender MessageSender, perSecond float64, burst int) *Announcer {
	if perSecond <= 0 {
		perSecond = DefaultAnnounceRate
	}
	if burst <= 0 {
		burst = DefaultAnnounceBurst
	}
	return &Announcer{
		sender:   sender,
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: expirable.NewLRU[int64, *rate.Limiter](maxAnnounceGuilds, nil, announceLimiterTTL),
	}
}

// Subscribe registers the announcer for level-up events
func (a *Announcer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.LevelUp, a.HandleLevelUp)
}

// HandleLevelUp posts the announcement. Delivery problems are logged, not
// returned, so the publisher does not retry them into duplicates.
func (a *Announcer) HandleLevelUp(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodeLevelUp, err)
	}
	log := logger.FromContext(ctx)

	if !a.allow(payload.GuildID) {
		metrics.LevelUpAnnouncements.WithLabelValues(metrics.ResultThrottled).Inc()
		log.Debug(LogMsgAnnounceThrottled, "guildID", payload.GuildID, "userID", payload.UserID)
		return nil
	}

	_, err = a.sender.ChannelMessageSendComplex(strconv.FormatInt(payload.ChannelID, 10), &discordgo.MessageSend{
		Content:         fmt.Sprintf(MsgLevelUp, payload.DisplayName, payload.NewLevel),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err != nil {
		metrics.LevelUpAnnouncements.WithLabelValues(metrics.ResultError).Inc()
		log.Warn(LogMsgAnnounceFailed, "guildID", payload.GuildID, "channelID", payload.ChannelID, "error", err)
		return nil
	}
	metrics.LevelUpAnnouncements.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

func (a *Announcer) allow(guildID int64) bool {
	a.mu.Lock()
	limiter, ok := a.limiters.Get(guildID)
	if !ok {
		limiter = rate.NewLimiter(a.limit, a.burst)
		a.limiters.Add(guildID, limiter)
	}
	a.mu.Unlock()
	return limiter.Allow()
}
