package leveling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

func rankedPage(userID, xp int64) []domain.RankedMember {
	return []domain.RankedMember{{MemberProgress: domain.MemberProgress{UserID: userID, XP: xp}, Rank: 1}}
}

func TestLeaderboardCache_InvalidateDuringLoadDiscardsPage(t *testing.T) {
	cache := newLeaderboardCache(time.Minute)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan []domain.RankedMember, 1)

	go func() {
		page, err := cache.get(ctx, guildID, func(context.Context) ([]domain.RankedMember, error) {
			close(started)
			<-release
			return rankedPage(1, 10), nil
		})
		require.NoError(t, err)
		done <- page
	}()

	<-started
	cache.invalidate(guildID)
	close(release)

	// The in-flight caller still receives what it loaded.
	assert.Equal(t, rankedPage(1, 10), <-done)

	page, err := cache.get(ctx, guildID, func(context.Context) ([]domain.RankedMember, error) {
		return rankedPage(2, 99), nil
	})
	require.NoError(t, err)
	assert.Equal(t, rankedPage(2, 99), page)
}

func TestLeaderboardCache_StoresPageWithoutInvalidate(t *testing.T) {
	cache := newLeaderboardCache(time.Minute)
	ctx := context.Background()
	calls := 0
	load := func(context.Context) ([]domain.RankedMember, error) {
		calls++
		return rankedPage(1, 10), nil
	}

	for i := 0; i < 3; i++ {
		_, err := cache.get(ctx, guildID, load)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)

	cache.invalidate(guildID)
	_, err := cache.get(ctx, guildID, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
