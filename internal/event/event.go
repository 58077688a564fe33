package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	LevelUp          Type = Type(domain.EventTypeLevelUp)
	XPAwarded        Type = Type(domain.EventTypeXPAwarded)
	GuildBlacklisted Type = Type(domain.EventTypeGuildBlacklisted)
)

// NewLevelUpEvent creates a level-up event for the announcer
func NewLevelUpEvent(p domain.LevelUpPayload) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: p,
		Metadata: map[string]interface{}{
			MetadataKeyGuildID: p.GuildID,
		},
	}
}

// NewXPAwardedEvent creates an XP awarded event
func NewXPAwardedEvent(guildID, userID, amount, total int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPAwarded,
		Payload: domain.XPAwardedPayload{
			GuildID:   guildID,
			UserID:    userID,
			Amount:    amount,
			TotalXP:   total,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewGuildBlacklistedEvent records that the bot left a blacklisted guild
func NewGuildBlacklistedEvent(guildID, ownerID int64, reason string, notified bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GuildBlacklisted,
		Payload: domain.GuildBlacklistedPayload{
			GuildID:   guildID,
			OwnerID:   ownerID,
			Reason:    reason,
			Notified:  notified,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the narrow interface services depend on to emit events
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
