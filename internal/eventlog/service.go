package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// LoggedTypes are the event types written to the audit log
var LoggedTypes = []event.Type{
	event.LevelUp,
	event.XPAwarded,
	event.GuildBlacklisted,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// Recent returns logged events newest first; the limit is clamped to MaxQueryLimit
	Recent(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodePayload, err)
	}

	guildID, userID := subjects(evt.Payload)
	if guildID == nil && userID == nil {
		log.Debug(LogMsgUnknownPayloadShape, LogFieldType, evt.Type)
	}

	entry := Event{
		EventType: string(evt.Type),
		GuildID:   guildID,
		UserID:    userID,
		Payload:   payload,
		Metadata:  evt.Metadata,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return fmt.Errorf(ErrMsgLogEvent, err)
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldGuildID, guildID, LogFieldUserID, userID)
	return nil
}

// subjects extracts the guild and user an event is about
func subjects(payload interface{}) (guildID, userID *int64) {
	switch p := payload.(type) {
	case domain.LevelUpPayload:
		return &p.GuildID, &p.UserID
	case *domain.LevelUpPayload:
		return &p.GuildID, &p.UserID
	case domain.XPAwardedPayload:
		return &p.GuildID, &p.UserID
	case *domain.XPAwardedPayload:
		return &p.GuildID, &p.UserID
	case domain.GuildBlacklistedPayload:
		return &p.GuildID, &p.OwnerID
	case *domain.GuildBlacklistedPayload:
		return &p.GuildID, &p.OwnerID
	}
	return nil, nil
}

func (s *service) Recent(ctx context.Context, filter EventFilter) ([]Event, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultQueryLimit
	case filter.Limit > MaxQueryLimit:
		filter.Limit = MaxQueryLimit
	}
	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryEvents, err)
	}
	return events, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	n, err := s.repo.CleanupOldEvents(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCleanup, err)
	}
	return n, nil
}
