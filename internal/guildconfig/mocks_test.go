package guildconfig

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockRepository implements repository.GuildConfig for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOrCreate(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildConfig), args.Error(1)
}

func (m *MockRepository) SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockRepository) SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockRepository) SetPrefix(ctx context.Context, guildID int64, prefix *string) error {
	return m.Called(ctx, guildID, prefix).Error(0)
}

func (m *MockRepository) SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockRepository) DisableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	args := m.Called(ctx, guildID, command)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) EnableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	args := m.Called(ctx, guildID, command)
	return args.Bool(0), args.Error(1)
}

// MockBlacklist implements UserBlacklist for testing
type MockBlacklist struct {
	mock.Mock
}

func (m *MockBlacklist) IsUserBlacklisted(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
