package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

const otherUser int64 = 800000000000000099

func createTag(t *testing.T, repo *TagRepository, name string, owner int64) *domain.Tag {
	t.Helper()
	tag, err := repo.Create(context.Background(), &domain.Tag{GuildID: testGuild, Name: name, OwnerID: owner, Content: "content of " + name})
	require.NoError(t, err)
	return tag
}

func TestTagRepository_CreateAndGet(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewTagRepository(pool)
	ctx := context.Background()

	created := createTag(t, repo, "rules", testUser)
	assert.NotZero(t, created.ID)
	assert.Zero(t, created.Usages)

	_, err := repo.Create(ctx, &domain.Tag{GuildID: testGuild, Name: "rules", OwnerID: otherUser, Content: "x"})
	assert.ErrorIs(t, err, domain.ErrTagExists)

	_, err = repo.Create(ctx, &domain.Tag{GuildID: testGuild + 1, Name: "rules", OwnerID: otherUser, Content: "x"})
	assert.NoError(t, err, "names are unique per guild only")

	got, err := repo.Get(ctx, testGuild, "rules")
	require.NoError(t, err)
	assert.Equal(t, "content of rules", got.Content)

	missing, err := repo.Get(ctx, testGuild, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTagRepository_ConcurrentUseCountsEveryCall(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewTagRepository(pool)
	ctx := context.Background()
	createTag(t, repo, "faq", testUser)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Use(ctx, testGuild, "faq")
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, testGuild, "faq")
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Usages)

	missing, err := repo.Use(ctx, testGuild, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTagRepository_OwnerScopedWrites(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewTagRepository(pool)
	ctx := context.Background()
	createTag(t, repo, "faq", testUser)
	createTag(t, repo, "wiki", testUser)

	changed, err := repo.UpdateContent(ctx, testGuild, otherUser, "faq", "hijacked")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.UpdateContent(ctx, testGuild, testUser, "faq", "updated")
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = repo.Rename(ctx, testGuild, testUser, "faq", "wiki")
	assert.ErrorIs(t, err, domain.ErrTagExists)

	changed, err = repo.Rename(ctx, testGuild, testUser, "faq", "help")
	require.NoError(t, err)
	assert.True(t, changed)

	deleted, err := repo.Delete(ctx, testGuild, otherUser, "help")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, testGuild, testUser, "help")
	require.NoError(t, err)
	assert.True(t, deleted)

	owned, err := repo.ListByOwner(ctx, testGuild, testUser)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "wiki", owned[0].Name)
}

func TestTagRepository_ListingsAndBoard(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewTagRepository(pool)
	ctx := context.Background()
	for _, name := range []string{"alpha", "alps", "beta", "gamma"} {
		createTag(t, repo, name, testUser)
	}
	for i := 0; i < 3; i++ {
		_, err := repo.Use(ctx, testGuild, "gamma")
		require.NoError(t, err)
	}
	_, err := repo.Use(ctx, testGuild, "beta")
	require.NoError(t, err)

	names, err := repo.SearchNames(ctx, testGuild, "al", 25)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alps"}, names)

	all, err := repo.SearchNames(ctx, testGuild, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "alps"}, all)

	top, err := repo.MostUsed(ctx, testGuild, domain.TagBoardSize)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "gamma", top[0].Name)
	assert.Equal(t, "beta", top[1].Name)

	oldest, err := repo.Oldest(ctx, testGuild, domain.TagBoardSize)
	require.NoError(t, err)
	require.Len(t, oldest, 3)
	assert.Equal(t, "alpha", oldest[0].Name)
}
