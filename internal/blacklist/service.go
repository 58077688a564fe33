package blacklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Service manages the guild and user blacklists
type Service interface {
	IsGuildBlacklisted(ctx context.Context, guildID int64) (bool, error)
	IsUserBlacklisted(ctx context.Context, userID int64) (bool, error)

	// Get returns nil, nil when the id is not on the kind's list
	Get(ctx context.Context, kind Kind, id int64) (*domain.BlacklistEntry, error)

	Add(ctx context.Context, kind Kind, id int64, reason string) error
	// Remove reports false when the id was not blacklisted
	Remove(ctx context.Context, kind Kind, id int64) (bool, error)
	List(ctx context.Context, kind Kind) ([]domain.BlacklistEntry, error)
}

type service struct {
	repo repository.Blacklist
}

// NewService creates a new blacklist service
func NewService(repo repository.Blacklist) Service {
	return &service{repo: repo}
}

func (s *service) IsGuildBlacklisted(ctx context.Context, guildID int64) (bool, error) {
	entry, err := s.Get(ctx, KindGuild, guildID)
	return entry != nil, err
}

func (s *service) IsUserBlacklisted(ctx context.Context, userID int64) (bool, error) {
	entry, err := s.Get(ctx, KindUser, userID)
	return entry != nil, err
}

func (s *service) Get(ctx context.Context, kind Kind, id int64) (*domain.BlacklistEntry, error) {
	var (
		entry *domain.BlacklistEntry
		err   error
	)
	switch kind {
	case KindGuild:
		entry, err = s.repo.GetGuild(ctx, id)
	case KindUser:
		entry, err = s.repo.GetUser(ctx, id)
	default:
		return nil, unknownKind(kind)
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindBlacklist).Inc()
		return nil, fmt.Errorf(ErrMsgLookupFailed, err)
	}
	return entry, nil
}

func (s *service) Add(ctx context.Context, kind Kind, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf(ErrMsgInvalidID, domain.ErrInvalidInput)
	}
	reason = strings.TrimSpace(reason)

	var err error
	switch kind {
	case KindGuild:
		err = s.repo.AddGuild(ctx, id, reason)
	case KindUser:
		err = s.repo.AddUser(ctx, id, reason)
	default:
		return unknownKind(kind)
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindBlacklist).Inc()
		return fmt.Errorf(ErrMsgUpdateFailed, err)
	}

	msg := LogMsgUserBlacklisted
	if kind == KindGuild {
		msg = LogMsgGuildBlacklisted
	}
	logger.FromContext(ctx).Info(msg, "id", id, "reason", reason)
	return nil
}

func (s *service) Remove(ctx context.Context, kind Kind, id int64) (bool, error) {
	var (
		removed bool
		err     error
	)
	switch kind {
	case KindGuild:
		removed, err = s.repo.RemoveGuild(ctx, id)
	case KindUser:
		removed, err = s.repo.RemoveUser(ctx, id)
	default:
		return false, unknownKind(kind)
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindBlacklist).Inc()
		return false, fmt.Errorf(ErrMsgUpdateFailed, err)
	}
	if removed {
		logger.FromContext(ctx).Info(LogMsgBlacklistRemoved, "kind", kind, "id", id)
	}
	return removed, nil
}

func (s *service) List(ctx context.Context, kind Kind) ([]domain.BlacklistEntry, error) {
	var (
		entries []domain.BlacklistEntry
		err     error
	)
	switch kind {
	case KindGuild:
		entries, err = s.repo.ListGuilds(ctx)
	case KindUser:
		entries, err = s.repo.ListUsers(ctx)
	default:
		return nil, unknownKind(kind)
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindBlacklist).Inc()
		return nil, fmt.Errorf(ErrMsgLookupFailed, err)
	}
	return entries, nil
}

func unknownKind(kind Kind) error {
	return fmt.Errorf(ErrMsgUnknownKind, kind, domain.ErrInvalidInput)
}
