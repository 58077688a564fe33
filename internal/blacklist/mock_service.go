package blacklist

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) IsGuildBlacklisted(ctx context.Context, guildID int64) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) IsUserBlacklisted(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, kind Kind, id int64) (*domain.BlacklistEntry, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlacklistEntry), args.Error(1)
}

func (m *MockService) Add(ctx context.Context, kind Kind, id int64, reason string) error {
	return m.Called(ctx, kind, id, reason).Error(0)
}

func (m *MockService) Remove(ctx context.Context, kind Kind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) List(ctx context.Context, kind Kind) ([]domain.BlacklistEntry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlacklistEntry), args.Error(1)
}
