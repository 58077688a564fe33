package repository

import (
	"context"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// GuildConfig defines the data access interface for per-guild settings
type GuildConfig interface {
	// GetOrCreate returns the guild's settings, inserting a default row on first access.
	GetOrCreate(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
	SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error
	SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error
	// SetPrefix stores a custom prefix; nil restores the default.
	SetPrefix(ctx context.Context, guildID int64, prefix *string) error
	SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error
	// DisableCommand reports false when the command was already disabled.
	DisableCommand(ctx context.Context, guildID int64, command string) (bool, error)
	// EnableCommand reports false when the command was not disabled.
	EnableCommand(ctx context.Context, guildID int64, command string) (bool, error)
}

// Blacklist defines the data access interface for blacklisted guilds and users
type Blacklist interface {
	// GetGuild and GetUser return nil, nil when the id is not blacklisted.
	GetGuild(ctx context.Context, guildID int64) (*domain.BlacklistEntry, error)
	GetUser(ctx context.Context, userID int64) (*domain.BlacklistEntry, error)
	AddGuild(ctx context.Context, guildID int64, reason string) error
	AddUser(ctx context.Context, userID int64, reason string) error
	RemoveGuild(ctx context.Context, guildID int64) (bool, error)
	RemoveUser(ctx context.Context, userID int64) (bool, error)
	ListGuilds(ctx context.Context) ([]domain.BlacklistEntry, error)
	ListUsers(ctx context.Context) ([]domain.BlacklistEntry, error)
}
