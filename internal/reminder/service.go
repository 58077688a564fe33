package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// CreateRequest describes a new reminder. GuildID is 0 for reminders set in direct messages.
type CreateRequest struct {
	UserID    int64
	GuildID   int64
	ChannelID int64
	When      string
	Message   string
	Repeat    time.Duration
}

// Service manages user reminders
type Service interface {
	// Create parses req.When, which must resolve to a future time.
	// A user holds at most domain.ReminderCap reminders.
	Create(ctx context.Context, req CreateRequest) (*domain.Reminder, error)
	List(ctx context.Context, userID int64) ([]domain.Reminder, error)
	// Delete removes one of the user's reminders; other users' reminders are domain.ErrNotFound.
	Delete(ctx context.Context, userID, reminderID int64) error
}

type service struct {
	repo   repository.Reminders
	parser *TimeParser
	limit  int
	now    func() time.Time
}

// NewService creates a new reminder service
func NewService(repo repository.Reminders, parser *TimeParser) Service {
	return &service{
		repo:   repo,
		parser: parser,
		limit:  domain.ReminderCap,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Reminder, error) {
	message := strings.TrimSpace(req.Message)
	if err := validate(message, req.Repeat); err != nil {
		return nil, err
	}

	now := s.now()
	at, err := s.parser.Parse(req.When, now)
	if err != nil {
		return nil, err
	}
	if !at.After(now) {
		return nil, domain.ErrReminderInPast
	}

	rem := &domain.Reminder{
		UserID:      req.UserID,
		ChannelID:   req.ChannelID,
		Message:     message,
		RemindAt:    at.UTC(),
		RepeatEvery: req.Repeat.Truncate(time.Second),
	}
	if req.GuildID != 0 {
		guildID := req.GuildID
		rem.GuildID = &guildID
	}

	created, err := s.repo.Create(ctx, rem, s.limit)
	if err != nil {
		if errors.Is(err, domain.ErrReminderCap) {
			return nil, err
		}
		metrics.StoreErrors.WithLabelValues(storeKindReminder).Inc()
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgReminderCreated,
		"userID", req.UserID, "reminderID", created.ID, "remindAt", created.RemindAt, "repeat", created.RepeatEvery)
	return created, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	reminders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindReminder).Inc()
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return reminders, nil
}

func (s *service) Delete(ctx context.Context, userID, reminderID int64) error {
	deleted, err := s.repo.Delete(ctx, userID, reminderID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindReminder).Inc()
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	logger.FromContext(ctx).Info(LogMsgReminderDeleted, "userID", userID, "reminderID", reminderID)
	return nil
}

func validate(message string, repeat time.Duration) error {
	if message == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyMessage)
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return fmt.Errorf("%w: "+ErrMsgMessageTooLongFmt, domain.ErrInvalidInput, MaxMessageLength)
	}
	if repeat != 0 && repeat < MinRepeat {
		return fmt.Errorf("%w: "+ErrMsgRepeatTooShortFmt, domain.ErrInvalidInput, MinRepeat)
	}
	if repeat > MaxRepeat {
		return fmt.Errorf("%w: "+ErrMsgRepeatTooLongFmt, domain.ErrInvalidInput, MaxRepeat)
	}
	return nil
}
