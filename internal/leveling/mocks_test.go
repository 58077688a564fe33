package leveling

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ApplyAward(ctx context.Context, guildID, userID, amount int64, now time.Time, cooldown time.Duration, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	args := m.Called(ctx, guildID, userID, amount, now, cooldown)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AwardResult), args.Error(1)
}

func (m *MockRepository) GrantXP(ctx context.Context, guildID, userID, amount int64, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	args := m.Called(ctx, guildID, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AwardResult), args.Error(1)
}

func (m *MockRepository) GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberProgress), args.Error(1)
}

func (m *MockRepository) TopMembers(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedMember), args.Error(1)
}

func (m *MockRepository) MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RankedMember), args.Error(1)
}

func (m *MockRepository) SetAccentColor(ctx context.Context, guildID, userID int64, color uint32) error {
	return m.Called(ctx, guildID, userID, color).Error(0)
}

func (m *MockRepository) SetBackground(ctx context.Context, guildID, userID int64, key string) error {
	return m.Called(ctx, guildID, userID, key).Error(0)
}

type MockSettings struct {
	mock.Mock
}

func (m *MockSettings) Get(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildConfig), args.Error(1)
}

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) OwnsBackground(ctx context.Context, userID int64, key string) (bool, error) {
	args := m.Called(ctx, userID, key)
	return args.Bool(0), args.Error(1)
}

type staticCatalog map[string]bool

func (c staticCatalog) Has(key string) bool { return c[key] }

// recordingPublisher captures published events in order
type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
