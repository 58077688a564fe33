package leveling

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// maxCachedGuilds bounds the leaderboard cache
const maxCachedGuilds = 1024

// leaderboardCache holds each guild's top page for a short TTL. Concurrent misses
// for one guild share a single store query. A load that overlaps an invalidate
// is returned to its callers but never stored.
type leaderboardCache struct {
	pages *expirable.LRU[int64, []domain.RankedMember]
	group singleflight.Group

	mu  sync.Mutex
	gen map[int64]uint64
}

func newLeaderboardCache(ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		pages: expirable.NewLRU[int64, []domain.RankedMember](maxCachedGuilds, nil, ttl),
		gen:   make(map[int64]uint64),
	}
}

func (c *leaderboardCache) generation(guildID int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[guildID]
}

// get returns the cached page for guildID, calling load on a miss.
// Callers must not modify the returned slice.
func (c *leaderboardCache) get(ctx context.Context, guildID int64, load func(context.Context) ([]domain.RankedMember, error)) ([]domain.RankedMember, error) {
	if page, ok := c.pages.Get(guildID); ok {
		metrics.LeaderboardCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return page, nil
	}
	metrics.LeaderboardCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	v, err, _ := c.group.Do(strconv.FormatInt(guildID, 10), func() (interface{}, error) {
		started := c.generation(guildID)
		page, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen[guildID] == started {
			c.pages.Add(guildID, page)
		}
		c.mu.Unlock()
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.RankedMember), nil
}

// invalidate drops guildID's page so the next read sees fresh ordering
func (c *leaderboardCache) invalidate(guildID int64) {
	c.mu.Lock()
	c.gen[guildID]++
	c.pages.Remove(guildID)
	c.mu.Unlock()
	c.group.Forget(strconv.FormatInt(guildID, 10))
}
