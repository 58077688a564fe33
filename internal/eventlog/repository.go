package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Event represents a logged event
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	GuildID   *int64                 `json:"guild_id,omitempty,string"`
	UserID    *int64                 `json:"user_id,omitempty,string"`
	Payload   json.RawMessage        `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventFilter filters events for queries
type EventFilter struct {
	GuildID   *int64
	UserID    *int64
	EventType *string
	Since     *time.Time
	Limit     int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, evt Event) error

	// GetEvents retrieves events newest first based on filter criteria
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
