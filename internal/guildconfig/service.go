package guildconfig

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

const storeKindGuild = "guild_config"

// Service owns every per-guild setting: persistence flags, prefix and disabled commands
type Service interface {
	// Get returns the guild's settings, creating the default row on first access.
	// The returned value is a copy and may be modified by the caller.
	Get(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
	SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error
	SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error
	SetPrefix(ctx context.Context, guildID int64, prefix string) error
	ResetPrefix(ctx context.Context, guildID int64) error
	SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error

	// EffectivePrefix is the custom prefix or the default. Direct messages (guildID 0) use the default.
	EffectivePrefix(ctx context.Context, guildID int64) (string, error)

	// DisableCommand reports false when the command was already disabled.
	DisableCommand(ctx context.Context, guildID int64, command string) (bool, error)
	// EnableCommand reports false when the command was not disabled.
	EnableCommand(ctx context.Context, guildID int64, command string) (bool, error)
	DisabledCommands(ctx context.Context, guildID int64) ([]string, error)
}

// Config holds guild settings service configuration
type Config struct {
	DefaultPrefix string
	CacheTTL      time.Duration

	// Commands lists the registered command names. When empty any name may be toggled.
	Commands []string
}

type service struct {
	repo     repository.GuildConfig
	cache    *expirable.LRU[int64, *domain.GuildConfig]
	prefix   string
	commands map[string]struct{}
}

// NewService creates a new guild settings service
func NewService(repo repository.GuildConfig, cfg Config) Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	var commands map[string]struct{}
	if len(cfg.Commands) > 0 {
		commands = make(map[string]struct{}, len(cfg.Commands))
		for _, c := range cfg.Commands {
			commands[strings.ToLower(c)] = struct{}{}
		}
	}
	return &service{
		repo:     repo,
		cache:    expirable.NewLRU[int64, *domain.GuildConfig](maxCachedGuilds, nil, ttl),
		prefix:   cfg.DefaultPrefix,
		commands: commands,
	}
}

func (s *service) Get(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	if cfg, ok := s.cache.Get(guildID); ok {
		return clone(cfg), nil
	}

	cfg, err := s.repo.GetOrCreate(ctx, guildID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindGuild).Inc()
		return nil, fmt.Errorf(ErrMsgLoadSettingsFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgGuildSettingsCreated, "guildID", guildID)
	s.cache.Add(guildID, cfg)
	return clone(cfg), nil
}

func (s *service) SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error {
	return s.write(guildID, s.repo.SetXPEnabled(ctx, guildID, enabled))
}

func (s *service) SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error {
	return s.write(guildID, s.repo.SetLevelupMessages(ctx, guildID, enabled))
}

func (s *service) SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error {
	return s.write(guildID, s.repo.SetMentionPrefix(ctx, guildID, enabled))
}

func (s *service) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	if err := ValidatePrefix(prefix, s.prefix); err != nil {
		return err
	}
	if err := s.write(guildID, s.repo.SetPrefix(ctx, guildID, &prefix)); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPrefixChanged, "guildID", guildID, "prefix", prefix)
	return nil
}

func (s *service) ResetPrefix(ctx context.Context, guildID int64) error {
	if err := s.write(guildID, s.repo.SetPrefix(ctx, guildID, nil)); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPrefixChanged, "guildID", guildID, "prefix", s.prefix)
	return nil
}

func (s *service) EffectivePrefix(ctx context.Context, guildID int64) (string, error) {
	if guildID == 0 {
		return s.prefix, nil
	}
	cfg, err := s.Get(ctx, guildID)
	if err != nil {
		return s.prefix, err
	}
	if cfg.Prefix != nil {
		return *cfg.Prefix, nil
	}
	return s.prefix, nil
}

func (s *service) DisableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	command, err := s.toggleable(command)
	if err != nil {
		return false, err
	}
	changed, err := s.repo.DisableCommand(ctx, guildID, command)
	if err := s.write(guildID, err); err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgCommandToggled, "guildID", guildID, "command", command, "enabled", false, "changed", changed)
	return changed, nil
}

func (s *service) EnableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	command, err := s.toggleable(command)
	if err != nil {
		return false, err
	}
	changed, err := s.repo.EnableCommand(ctx, guildID, command)
	if err := s.write(guildID, err); err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgCommandToggled, "guildID", guildID, "command", command, "enabled", true, "changed", changed)
	return changed, nil
}

func (s *service) DisabledCommands(ctx context.Context, guildID int64) ([]string, error) {
	cfg, err := s.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	return cfg.DisabledCommands, nil
}

// toggleable normalises the command name and rejects guard and unknown commands
func (s *service) toggleable(command string) (string, error) {
	command = strings.ToLower(strings.TrimSpace(command))
	if IsGuardCommand(command) {
		return "", fmt.Errorf("%w: %s", domain.ErrCommandNotToggleable, command)
	}
	if s.commands != nil {
		if _, ok := s.commands[command]; !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownCommand, command)
		}
	}
	return command, nil
}

// write invalidates the cached row after a mutation, successful or not
func (s *service) write(guildID int64, err error) error {
	s.cache.Remove(guildID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindGuild).Inc()
		return fmt.Errorf(ErrMsgUpdateSettingsFailed, err)
	}
	return nil
}

// IsGuardCommand reports whether the command can never be disabled
func IsGuardCommand(command string) bool {
	return command == CommandGuard || command == CommandHelp
}

// ValidatePrefix checks a custom prefix against the length, whitespace and default rules
func ValidatePrefix(prefix, defaultPrefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidPrefix, ErrMsgPrefixEmpty)
	case utf8.RuneCountInString(prefix) > domain.MaxPrefixLength:
		return fmt.Errorf("%w: "+ErrMsgPrefixTooLongFmt, domain.ErrInvalidPrefix, domain.MaxPrefixLength)
	case strings.IndexFunc(prefix, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: %s", domain.ErrInvalidPrefix, ErrMsgPrefixWhitespace)
	case prefix == defaultPrefix:
		return fmt.Errorf("%w: %s", domain.ErrInvalidPrefix, ErrMsgPrefixIsDefault)
	}
	return nil
}

func clone(cfg *domain.GuildConfig) *domain.GuildConfig {
	c := *cfg
	if cfg.Prefix != nil {
		p := *cfg.Prefix
		c.Prefix = &p
	}
	c.DisabledCommands = slices.Clone(cfg.DisabledCommands)
	return &c
}
