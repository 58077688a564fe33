package tags

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, guildID, ownerID int64, name, content string) (*domain.Tag, error) {
	args := m.Called(ctx, guildID, ownerID, name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockService) Show(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockService) Peek(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockService) Edit(ctx context.Context, guildID, ownerID int64, name, content string) error {
	return m.Called(ctx, guildID, ownerID, name, content).Error(0)
}

func (m *MockService) Rename(ctx context.Context, guildID, ownerID int64, name, newName string) error {
	return m.Called(ctx, guildID, ownerID, name, newName).Error(0)
}

func (m *MockService) Delete(ctx context.Context, guildID, ownerID int64, name string) error {
	return m.Called(ctx, guildID, ownerID, name).Error(0)
}

func (m *MockService) Owned(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error) {
	args := m.Called(ctx, guildID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockService) Names(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error) {
	args := m.Called(ctx, guildID, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockService) Board(ctx context.Context, guildID int64) (*domain.TagBoard, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TagBoard), args.Error(1)
}
