package leveling

import (
	"context"
	"sync"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// memoryLevels is an in-memory repository.Levels with the same conditional-award
// semantics as the SQL implementation.
type memoryLevels struct {
	mu      sync.Mutex
	members map[[2]int64]*domain.MemberProgress
}

func newMemoryLevels() *memoryLevels {
	return &memoryLevels{members: make(map[[2]int64]*domain.MemberProgress)}
}

func (r *memoryLevels) ApplyAward(_ context.Context, guildID, userID, amount int64, now time.Time, cooldown time.Duration, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[[2]int64{guildID, userID}]
	if !ok {
		m = &domain.MemberProgress{GuildID: guildID, UserID: userID, Level: 1}
		r.members[[2]int64{guildID, userID}] = m
	} else if m.LastAwardAt.After(now.Add(-cooldown)) {
		return nil, domain.ErrRaceLoss
	}
	return r.add(m, amount, &now, levelFor), nil
}

func (r *memoryLevels) GrantXP(_ context.Context, guildID, userID, amount int64, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[[2]int64{guildID, userID}]
	if !ok {
		m = &domain.MemberProgress{GuildID: guildID, UserID: userID, Level: 1}
		r.members[[2]int64{guildID, userID}] = m
	}
	return r.add(m, amount, nil, levelFor), nil
}

func (r *memoryLevels) add(m *domain.MemberProgress, amount int64, at *time.Time, levelFor repository.LevelFunc) *domain.AwardResult {
	old := m.Level
	m.XP += amount
	m.Level = levelFor(m.XP)
	if at != nil {
		m.LastAwardAt = *at
	}
	return &domain.AwardResult{XPGained: amount, NewXP: m.XP, OldLevel: old, NewLevel: m.Level, LeveledUp: m.Level > old}
}

func (r *memoryLevels) GetProgress(_ context.Context, guildID, userID int64) (*domain.MemberProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.members[[2]int64{guildID, userID}]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryLevels) TopMembers(context.Context, int64, int) ([]domain.RankedMember, error) {
	return nil, nil
}

func (r *memoryLevels) MemberRank(context.Context, int64, int64) (*domain.RankedMember, error) {
	return nil, nil
}

func (r *memoryLevels) SetAccentColor(context.Context, int64, int64, uint32) error { return nil }

func (r *memoryLevels) SetBackground(context.Context, int64, int64, string) error { return nil }

type alwaysEnabled struct{}

func (alwaysEnabled) Get(_ context.Context, guildID int64) (*domain.GuildConfig, error) {
	return &domain.GuildConfig{GuildID: guildID, XPEnabled: true, LevelupMessagesEnabled: true}, nil
}

func TestProperty_AwardPolicy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cooldown := time.Duration(rapid.IntRange(1, 300).Draw(rt, "cooldown_s")) * time.Second
		xpMin := rapid.IntRange(1, 10).Draw(rt, "xp_min")
		xpMax := rapid.IntRange(xpMin, xpMin+40).Draw(rt, "xp_max")
		gaps := rapid.SliceOfN(rapid.IntRange(0, 600), 1, 60).Draw(rt, "gaps_s")

		repo := newMemoryLevels()
		svc := NewService(repo, alwaysEnabled{}, staticCatalog{}, nil, &recordingPublisher{}, nil, Config{
			Cooldown: cooldown, XPMin: xpMin, XPMax: xpMax, LeaderboardSize: 10,
		})

		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		var lastGrant time.Time
		grants := 0
		for i, gap := range gaps {
			at = at.Add(time.Duration(gap) * time.Second)
			res, err := svc.HandleMessage(context.Background(), domain.MessageEvent{GuildID: 1, UserID: 2, Timestamp: at})
			if err != nil {
				rt.Fatalf("message %d: %v", i, err)
			}

			eligible := grants == 0 || !at.Before(lastGrant.Add(cooldown))
			if eligible != res.Awarded() {
				rt.Fatalf("message %d at %v: eligible=%v awarded=%v (%s)", i, at, eligible, res.Awarded(), res.Skipped)
			}
			if res.Awarded() {
				grants++
				lastGrant = at
				if res.XPGained < int64(xpMin) || res.XPGained > int64(xpMax) {
					rt.Fatalf("draw %d outside [%d, %d]", res.XPGained, xpMin, xpMax)
				}
			}
		}

		m, _ := repo.GetProgress(context.Background(), 1, 2)
		if m.Level != LevelFor(m.XP) {
			rt.Fatalf("stored level %d does not match level_for(%d)=%d", m.Level, m.XP, LevelFor(m.XP))
		}
		if m.XP < int64(grants*xpMin) || m.XP > int64(grants*xpMax) {
			rt.Fatalf("xp %d inconsistent with %d grants", m.XP, grants)
		}
	})
}

func TestConcurrentMessagesAwardOnce(t *testing.T) {
	repo := newMemoryLevels()
	svc := NewService(repo, alwaysEnabled{}, staticCatalog{}, nil, &recordingPublisher{}, nil, Config{
		Cooldown: 2 * time.Minute, XPMin: 3, XPMax: 5, LeaderboardSize: 10,
	})
	at := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	awarded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.HandleMessage(context.Background(), domain.MessageEvent{GuildID: 1, UserID: 2, Timestamp: at})
			if err == nil && res.Awarded() {
				mu.Lock()
				awarded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if awarded != 1 {
		t.Fatalf("expected exactly one award, got %d", awarded)
	}
}
