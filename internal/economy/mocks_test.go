package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockRepository) RecordDaily(ctx context.Context, userID, amount int64, streak int, claimedAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, amount, streak, claimedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListItems(ctx context.Context, kind string) ([]domain.Item, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) GetItemByKey(ctx context.Context, key string) (*domain.Item, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) Purchase(ctx context.Context, userID int64, item domain.Item) (int64, error) {
	args := m.Called(ctx, userID, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) OwnedItems(ctx context.Context, userID int64, kind string) ([]domain.Item, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) HasItem(ctx context.Context, userID int64, key string) (bool, error) {
	args := m.Called(ctx, userID, key)
	return args.Bool(0), args.Error(1)
}
