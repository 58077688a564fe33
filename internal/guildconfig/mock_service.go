package guildconfig

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildConfig), args.Error(1)
}

func (m *MockService) SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockService) SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockService) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	return m.Called(ctx, guildID, prefix).Error(0)
}

func (m *MockService) ResetPrefix(ctx context.Context, guildID int64) error {
	return m.Called(ctx, guildID).Error(0)
}

func (m *MockService) SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error {
	return m.Called(ctx, guildID, enabled).Error(0)
}

func (m *MockService) EffectivePrefix(ctx context.Context, guildID int64) (string, error) {
	args := m.Called(ctx, guildID)
	return args.String(0), args.Error(1)
}

func (m *MockService) DisableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	args := m.Called(ctx, guildID, command)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) EnableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	args := m.Called(ctx, guildID, command)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) DisabledCommands(ctx context.Context, guildID int64) ([]string, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
