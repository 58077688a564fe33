package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// MockRepository implements repository.Reminders for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *domain.Reminder, limit int) (*domain.Reminder, error) {
	args := m.Called(ctx, r, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, reminderID int64) (bool, error) {
	args := m.Called(ctx, userID, reminderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.Reminder, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

// fakeDeliverer fails for the listed reminder ids and reports a DM fallback for others listed in dm
type fakeDeliverer struct {
	mu        sync.Mutex
	fail      map[int64]error
	dm        map[int64]bool
	delivered []int64
}

func (f *fakeDeliverer) DeliverReminder(_ context.Context, r domain.Reminder) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fail[r.ID]; ok {
		return false, err
	}
	f.delivered = append(f.delivered, r.ID)
	return f.dm[r.ID], nil
}
