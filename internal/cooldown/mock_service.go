package cooldown

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of the Service interface.
// EnforceCooldown runs fn when the configured error is nil.
type MockService struct {
	mock.Mock
}

func (m *MockService) CheckCooldown(ctx context.Context, userID int64, action string) (bool, time.Duration, error) {
	args := m.Called(ctx, userID, action)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockService) EnforceCooldown(ctx context.Context, userID int64, action string, fn func() error) error {
	args := m.Called(ctx, userID, action, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn()
}

func (m *MockService) ResetCooldown(ctx context.Context, userID int64, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockService) GetLastUsed(ctx context.Context, userID int64, action string) (*time.Time, error) {
	args := m.Called(ctx, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}
