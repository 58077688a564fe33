package leveling

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) HandleMessage(ctx context.Context, msg domain.MessageEvent) (*domain.AwardResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AwardResult), args.Error(1)
}

func (m *MockService) GrantXP(ctx context.Context, guildID, userID, amount int64) (*domain.AwardResult, error) {
	args := m.Called(ctx, guildID, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AwardResult), args.Error(1)
}

func (m *MockService) GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberProgress), args.Error(1)
}

func (m *MockService) Leaderboard(ctx context.Context, guildID, requesterID int64) (*domain.Leaderboard, error) {
	args := m.Called(ctx, guildID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockService) LeaderboardPage(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedMember), args.Error(1)
}

func (m *MockService) MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RankedMember), args.Error(1)
}

func (m *MockService) SetAccentColor(ctx context.Context, guildID, userID int64, raw string) (uint32, error) {
	args := m.Called(ctx, guildID, userID, raw)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockService) SetBackground(ctx context.Context, guildID, userID int64, key string) error {
	args := m.Called(ctx, guildID, userID, key)
	return args.Error(0)
}
