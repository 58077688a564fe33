package leveling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/concurrency"
	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Service defines the interface for XP accrual, ranking and profile cosmetics
type Service interface {
	HandleMessage(ctx context.Context, msg domain.MessageEvent) (*domain.AwardResult, error)
	GrantXP(ctx context.Context, guildID, userID, amount int64) (*domain.AwardResult, error)
	GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error)
	Leaderboard(ctx context.Context, guildID, requesterID int64) (*domain.Leaderboard, error)
	LeaderboardPage(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error)
	MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error)
	SetAccentColor(ctx context.Context, guildID, userID int64, raw string) (uint32, error)
	SetBackground(ctx context.Context, guildID, userID int64, key string) error
}

// GuildSettings exposes the per-guild flags consulted on every message
type GuildSettings interface {
	Get(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
}

// BackgroundCatalog reports which background images can be rendered
type BackgroundCatalog interface {
	Has(key string) bool
}

// Inventory answers whether a user owns a background
type Inventory interface {
	OwnsBackground(ctx context.Context, userID int64, key string) (bool, error)
}

// Config holds the tunables of the award policy and ranking cache
type Config struct {
	Cooldown        time.Duration
	XPMin           int
	XPMax           int
	LeaderboardSize int
	CacheTTL        time.Duration
}

type service struct {
	repo      repository.Levels
	settings  GuildSettings
	catalog   BackgroundCatalog
	inventory Inventory
	publisher event.Publisher
	locks     *concurrency.LockManager
	cache     *leaderboardCache
	cfg       Config

	now  func() time.Time
	draw func(min, max int) int64
}

// NewService creates a new leveling service. A zero CacheTTL disables the leaderboard cache.
func NewService(repo repository.Levels, settings GuildSettings, catalog BackgroundCatalog, inventory Inventory, publisher event.Publisher, locks *concurrency.LockManager, cfg Config) Service {
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = domain.DefaultLeaderboardSize
	}
	if cfg.XPMin <= 0 || cfg.XPMax < cfg.XPMin {
		cfg.XPMin, cfg.XPMax = domain.DefaultXPMin, domain.DefaultXPMax
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}

	s := &service{
		repo:      repo,
		settings:  settings,
		catalog:   catalog,
		inventory: inventory,
		publisher: publisher,
		locks:     locks,
		cfg:       cfg,
		now:       time.Now,
		draw:      DrawXP,
	}
	if cfg.CacheTTL > 0 {
		s.cache = newLeaderboardCache(cfg.CacheTTL)
	}
	return s
}

// HandleMessage applies the award policy to one inbound message
func (s *service) HandleMessage(ctx context.Context, msg domain.MessageEvent) (*domain.AwardResult, error) {
	if reason := precheck(msg); reason != domain.SkipNone {
		return s.skip(ctx, msg, reason), nil
	}

	settings, err := s.settings.Get(ctx, msg.GuildID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgGuildSettingsError, "guild_id", msg.GuildID, "error", err)
		return nil, err
	}
	if !settings.XPEnabled {
		return s.skip(ctx, msg, domain.SkipXPDisabled), nil
	}

	now := msg.Timestamp
	if now.IsZero() {
		now = s.now()
	}

	mu := s.locks.GetLock(memberKey(msg.GuildID, msg.UserID))
	mu.Lock()
	defer mu.Unlock()

	// Reading first keeps the common in-cooldown case write-free.
	current, err := s.repo.GetProgress(ctx, msg.GuildID, msg.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadProgressFailed, err)
	}
	if current != nil && !ShouldAward(now, current.LastAwardAt, s.cfg.Cooldown) {
		return s.skip(ctx, msg, domain.SkipOnCooldown), nil
	}

	amount := s.draw(s.cfg.XPMin, s.cfg.XPMax)
	result, err := s.repo.ApplyAward(ctx, msg.GuildID, msg.UserID, amount, now, s.cfg.Cooldown, LevelFor)
	if err != nil {
		if errors.Is(err, domain.ErrRaceLoss) {
			return s.skip(ctx, msg, domain.SkipRaceLoss), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgApplyAwardFailed, err)
	}

	s.afterAward(ctx, msg.GuildID, msg.UserID, result, domain.XPSourceMessage)
	if result.LeveledUp && settings.LevelupMessagesEnabled {
		s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(domain.LevelUpPayload{
			GuildID:     msg.GuildID,
			ChannelID:   msg.ChannelID,
			UserID:      msg.UserID,
			DisplayName: msg.DisplayName,
			OldLevel:    result.OldLevel,
			NewLevel:    result.NewLevel,
			Timestamp:   now.Unix(),
		}))
	}
	return result, nil
}

// GrantXP adds XP outside the cooldown, e.g. from an owner command
func (s *service) GrantXP(ctx context.Context, guildID, userID, amount int64) (*domain.AwardResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgGrantNotPositive)
	}

	mu := s.locks.GetLock(memberKey(guildID, userID))
	mu.Lock()
	defer mu.Unlock()

	result, err := s.repo.GrantXP(ctx, guildID, userID, amount, LevelFor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgApplyAwardFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgXPGranted, "guild_id", guildID, "user_id", userID, "amount", amount, "new_level", result.NewLevel)
	s.afterAward(ctx, guildID, userID, result, domain.XPSourceGrant)
	return result, nil
}

func (s *service) afterAward(ctx context.Context, guildID, userID int64, result *domain.AwardResult, source string) {
	metrics.XPAwarded.WithLabelValues(source).Add(float64(result.XPGained))
	if s.cache != nil {
		s.cache.invalidate(guildID)
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgXPAwarded, "guild_id", guildID, "user_id", userID, "amount", result.XPGained, "total", result.NewXP)
	if result.LeveledUp {
		metrics.LevelUps.Inc()
		log.Info(LogMsgLevelUp, "guild_id", guildID, "user_id", userID, "old_level", result.OldLevel, "new_level", result.NewLevel)
	}

	s.publisher.PublishWithRetry(ctx, event.NewXPAwardedEvent(guildID, userID, result.XPGained, result.NewXP, source))
}

// GetProgress returns domain.ErrNotFound for members without XP
func (s *service) GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error) {
	progress, err := s.repo.GetProgress(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadProgressFailed, err)
	}
	if progress == nil {
		return nil, domain.ErrNotFound
	}
	return progress, nil
}

// Leaderboard returns the guild's top page and the requester's live standing
func (s *service) Leaderboard(ctx context.Context, guildID, requesterID int64) (*domain.Leaderboard, error) {
	entries, err := s.LeaderboardPage(ctx, guildID, s.cfg.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	self, err := s.MemberRank(ctx, guildID, requesterID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return &domain.Leaderboard{GuildID: guildID, Entries: entries, Self: self}, nil
}

// LeaderboardPage returns up to limit members from the top of the ordering.
// Pages of the configured size come from the cache.
func (s *service) LeaderboardPage(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error) {
	load := func(ctx context.Context) ([]domain.RankedMember, error) {
		return s.repo.TopMembers(ctx, guildID, s.cfg.LeaderboardSize)
	}
	if limit <= 0 || limit > s.cfg.LeaderboardSize || s.cache == nil {
		entries, err := s.repo.TopMembers(ctx, guildID, max(limit, 1))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgReadLeaderboard, err)
		}
		return entries, nil
	}

	page, err := s.cache.get(ctx, guildID, load)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadLeaderboard, err)
	}
	if len(page) > limit {
		page = page[:limit]
	}
	return page, nil
}

// MemberRank returns domain.ErrNotFound when the member has no XP in the guild
func (s *service) MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error) {
	ranked, err := s.repo.MemberRank(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadRankFailed, err)
	}
	if ranked == nil {
		return nil, domain.ErrNotFound
	}
	return ranked, nil
}

// SetAccentColor parses and stores the member's accent color
func (s *service) SetAccentColor(ctx context.Context, guildID, userID int64, raw string) (uint32, error) {
	color, err := ParseColor(raw)
	if err != nil {
		return 0, err
	}
	if err := s.repo.SetAccentColor(ctx, guildID, userID, color); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgUpdateCosmeticFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgAccentColorSet, "guild_id", guildID, "user_id", userID, "color", FormatColor(color))
	return color, nil
}

// SetBackground stores key when it is the default or a rendered background the user owns
func (s *service) SetBackground(ctx context.Context, guildID, userID int64, key string) error {
	if key != domain.DefaultBackground {
		if !s.catalog.Has(key) {
			return fmt.Errorf("%w: unknown background %q", domain.ErrInvalidCosmetic, key)
		}
		owned, err := s.inventory.OwnsBackground(ctx, userID, key)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgOwnershipFailed, err)
		}
		if !owned {
			return fmt.Errorf("%w: background %q not owned", domain.ErrInvalidCosmetic, key)
		}
	}

	if err := s.repo.SetBackground(ctx, guildID, userID, key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrMsgUpdateCosmeticFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgBackgroundSet, "guild_id", guildID, "user_id", userID, "background", key)
	return nil
}

func (s *service) skip(ctx context.Context, msg domain.MessageEvent, reason domain.AwardSkipReason) *domain.AwardResult {
	metrics.XPAwardsSkipped.WithLabelValues(string(reason)).Inc()
	logger.FromContext(ctx).Debug(LogMsgAwardSkipped, "guild_id", msg.GuildID, "user_id", msg.UserID, "reason", reason)
	return &domain.AwardResult{Skipped: reason}
}

// precheck covers the cases decided by the message alone
func precheck(msg domain.MessageEvent) domain.AwardSkipReason {
	switch {
	case msg.GuildID == 0:
		return domain.SkipNoGuild
	case msg.IsBot:
		return domain.SkipBot
	case msg.IsCommand:
		return domain.SkipCommand
	default:
		return domain.SkipNone
	}
}

func memberKey(guildID, userID int64) string {
	return fmt.Sprintf("%d:%d", guildID, userID)
}
