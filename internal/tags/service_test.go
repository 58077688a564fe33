package tags

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

const (
	testGuild int64 = 900000000000000001
	testOwner int64 = 800000000000000001
	testOther int64 = 800000000000000002
)

func TestCreate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, &domain.Tag{GuildID: testGuild, Name: "rules", OwnerID: testOwner, Content: "be nice"}).
		Return(&domain.Tag{ID: 1, Name: "rules"}, nil)

	tag, err := svc.Create(ctx, testGuild, testOwner, "  Rules ", "\nbe nice\n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.ID)
	repo.AssertExpectations(t)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		tagName string
		content string
		want    error
	}{
		{"empty name", " ", "x", domain.ErrTagNameInvalid},
		{"long name", strings.Repeat("a", domain.MaxTagNameLength+1), "x", domain.ErrTagNameInvalid},
		{"spaced name", "two words", "x", domain.ErrTagNameInvalid},
		{"reserved name", "Create", "x", domain.ErrTagNameInvalid},
		{"empty content", "faq", "   ", domain.ErrInvalidInput},
		{"long content", "faq", strings.Repeat("é", domain.MaxTagContentLength+1), domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			_, err := NewService(repo).Create(context.Background(), testGuild, testOwner, tt.tagName, tt.content)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrTagExists)

	_, err := NewService(repo).Create(context.Background(), testGuild, testOwner, "faq", "x")
	assert.ErrorIs(t, err, domain.ErrTagExists)
}

func TestShowCountsUse(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()
	repo.On("Use", ctx, testGuild, "faq").Return(&domain.Tag{Name: "faq", Usages: 4}, nil)
	repo.On("Use", ctx, testGuild, "nope").Return(nil, nil)

	tag, err := svc.Show(ctx, testGuild, "FAQ")
	require.NoError(t, err)
	assert.Equal(t, int64(4), tag.Usages)

	_, err = svc.Show(ctx, testGuild, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestOwnerScopedWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("other member's tag", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateContent", ctx, testGuild, testOther, "faq", "mine now").Return(false, nil)
		repo.On("Get", ctx, testGuild, "faq").Return(&domain.Tag{Name: "faq", OwnerID: testOwner}, nil)

		err := NewService(repo).Edit(ctx, testGuild, testOther, "faq", "mine now")
		assert.ErrorIs(t, err, domain.ErrTagNotOwned)
	})

	t.Run("missing tag", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, testGuild, testOwner, "faq").Return(false, nil)
		repo.On("Get", ctx, testGuild, "faq").Return(nil, nil)

		err := NewService(repo).Delete(ctx, testGuild, testOwner, "faq")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rename validates the new name", func(t *testing.T) {
		repo := new(MockRepository)
		err := NewService(repo).Rename(ctx, testGuild, testOwner, "faq", "list")
		assert.ErrorIs(t, err, domain.ErrTagNameInvalid)
		repo.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rename onto a taken name", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Rename", ctx, testGuild, testOwner, "faq", "help").Return(false, domain.ErrTagExists)

		err := NewService(repo).Rename(ctx, testGuild, testOwner, "faq", "Help")
		assert.ErrorIs(t, err, domain.ErrTagExists)
	})

	t.Run("owner renames", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Rename", ctx, testGuild, testOwner, "faq", "help").Return(true, nil)

		assert.NoError(t, NewService(repo).Rename(ctx, testGuild, testOwner, "faq", "help"))
	})
}

func TestNamesClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	repo.On("SearchNames", ctx, testGuild, "fa", MaxListed).Return([]string{"faq"}, nil)

	names, err := NewService(repo).Names(ctx, testGuild, " FA", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"faq"}, names)
}

func TestBoard(t *testing.T) {
	repo := new(MockRepository)
	ctx := context.Background()
	used := []domain.Tag{{Name: "faq", Usages: 9}}
	oldest := []domain.Tag{{Name: "rules"}}
	repo.On("MostUsed", ctx, testGuild, domain.TagBoardSize).Return(used, nil)
	repo.On("Oldest", ctx, testGuild, domain.TagBoardSize).Return(oldest, nil)

	board, err := NewService(repo).Board(ctx, testGuild)
	require.NoError(t, err)
	assert.Equal(t, &domain.TagBoard{MostUsed: used, Oldest: oldest}, board)
}

func TestSplitImage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		url     string
		rest    string
	}{
		{"image with caption", "look https://cdn.example.com/cat.PNG here", "https://cdn.example.com/cat.PNG", "look  here"},
		{"image only", "http://x.io/a.gif", "http://x.io/a.gif", ""},
		{"plain link", "see https://example.com/docs", "", "see https://example.com/docs"},
		{"no scheme", "cdn.example.com/cat.png", "", "cdn.example.com/cat.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, rest := SplitImage(tt.content)
			assert.Equal(t, tt.url, url)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestNormalizeName_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "name")
		name := NormalizeName(raw)

		if NormalizeName(name) != name {
			t.Fatalf("not idempotent: %q -> %q", raw, name)
		}
		if ValidateName(name) == nil && (strings.ContainsAny(name, " \t\n") || name != strings.ToLower(name)) {
			t.Fatalf("accepted %q", name)
		}
	})
}
