package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/eventlog"
)

func TestEventLogRepository_RoundTrip(t *testing.T) {
	pool := setupTestPool(t)
	svc := eventlog.NewService(NewEventLogRepository(pool))
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewXPAwardedEvent(testGuild, testUser, 4, 4, domain.XPSourceMessage)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(domain.LevelUpPayload{GuildID: testGuild, UserID: testUser, OldLevel: 1, NewLevel: 2})))
	require.NoError(t, bus.Publish(ctx, event.NewXPAwardedEvent(testGuild+1, testUser, 3, 3, domain.XPSourceMessage)))

	guild := testGuild
	events, err := svc.Recent(ctx, eventlog.EventFilter{GuildID: &guild})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, string(event.LevelUp), events[0].EventType)
	assert.Equal(t, string(event.XPAwarded), events[1].EventType)

	var payload domain.LevelUpPayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, 2, payload.NewLevel)

	kind := string(event.XPAwarded)
	events, err = svc.Recent(ctx, eventlog.EventFilter{EventType: &kind, Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.XPSourceMessage, events[0].Metadata[event.MetadataKeySource])
}

func TestEventLogRepository_Cleanup(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.LogEvent(ctx, eventlog.Event{EventType: "level.up", Payload: json.RawMessage(`{}`)}))
	_, err := pool.Exec(ctx, `UPDATE event_log SET created_at = NOW() - INTERVAL '40 days'`)
	require.NoError(t, err)
	require.NoError(t, repo.LogEvent(ctx, eventlog.Event{EventType: "level.up", Payload: json.RawMessage(`{}`)}))

	deleted, err := repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
