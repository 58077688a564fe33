package tags

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockRepository implements repository.Tags for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockRepository) Use(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockRepository) UpdateContent(ctx context.Context, guildID, ownerID int64, name, content string) (bool, error) {
	args := m.Called(ctx, guildID, ownerID, name, content)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Rename(ctx context.Context, guildID, ownerID int64, name, newName string) (bool, error) {
	args := m.Called(ctx, guildID, ownerID, name, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, guildID, ownerID int64, name string) (bool, error) {
	args := m.Called(ctx, guildID, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error) {
	args := m.Called(ctx, guildID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockRepository) SearchNames(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error) {
	args := m.Called(ctx, guildID, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) MostUsed(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockRepository) Oldest(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
