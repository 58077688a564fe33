package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildConfigRepository_LazyDefaults(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewGuildConfigRepository(pool)

	cfg, err := repo.GetOrCreate(context.Background(), testGuild)
	require.NoError(t, err)
	assert.Equal(t, testGuild, cfg.GuildID)
	assert.Nil(t, cfg.Prefix)
	assert.True(t, cfg.MentionPrefix)
	assert.True(t, cfg.XPEnabled)
	assert.True(t, cfg.LevelupMessagesEnabled)
	assert.Empty(t, cfg.DisabledCommands)
}

func TestGuildConfigRepository_Updates(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewGuildConfigRepository(pool)
	ctx := context.Background()

	prefix := "?"
	require.NoError(t, repo.SetXPEnabled(ctx, testGuild, false))
	require.NoError(t, repo.SetLevelupMessages(ctx, testGuild, false))
	require.NoError(t, repo.SetPrefix(ctx, testGuild, &prefix))
	require.NoError(t, repo.SetMentionPrefix(ctx, testGuild, false))

	cfg, err := repo.GetOrCreate(ctx, testGuild)
	require.NoError(t, err)
	assert.False(t, cfg.XPEnabled)
	assert.False(t, cfg.LevelupMessagesEnabled)
	assert.False(t, cfg.MentionPrefix)
	require.NotNil(t, cfg.Prefix)
	assert.Equal(t, "?", *cfg.Prefix)

	require.NoError(t, repo.SetPrefix(ctx, testGuild, nil))
	cfg, err = repo.GetOrCreate(ctx, testGuild)
	require.NoError(t, err)
	assert.Nil(t, cfg.Prefix)
}

func TestGuildConfigRepository_DisabledCommands(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewGuildConfigRepository(pool)
	ctx := context.Background()

	changed, err := repo.DisableCommand(ctx, testGuild, "leaderboard")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.DisableCommand(ctx, testGuild, "leaderboard")
	require.NoError(t, err)
	assert.False(t, changed, "second disable is a no-op")

	_, err = repo.DisableCommand(ctx, testGuild, "daily")
	require.NoError(t, err)

	cfg, err := repo.GetOrCreate(ctx, testGuild)
	require.NoError(t, err)
	assert.Equal(t, []string{"daily", "leaderboard"}, cfg.DisabledCommands)

	changed, err = repo.EnableCommand(ctx, testGuild, "leaderboard")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.EnableCommand(ctx, testGuild, "leaderboard")
	require.NoError(t, err)
	assert.False(t, changed)

	cfg, err = repo.GetOrCreate(ctx, testGuild)
	require.NoError(t, err)
	assert.Equal(t, []string{"daily"}, cfg.DisabledCommands)
}
