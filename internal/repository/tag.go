package repository

import (
	"context"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// Tags defines the data access interface for guild tags
type Tags interface {
	// Create returns domain.ErrTagExists when the guild already has the name.
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	// Get returns nil, nil for unknown names.
	Get(ctx context.Context, guildID int64, name string) (*domain.Tag, error)
	// Use increments the usage counter and returns the updated tag, or nil for unknown names.
	Use(ctx context.Context, guildID int64, name string) (*domain.Tag, error)
	// UpdateContent, Rename and Delete only touch tags owned by ownerID and report whether a row changed.
	UpdateContent(ctx context.Context, guildID, ownerID int64, name, content string) (bool, error)
	// Rename returns domain.ErrTagExists when newName is taken.
	Rename(ctx context.Context, guildID, ownerID int64, name, newName string) (bool, error)
	Delete(ctx context.Context, guildID, ownerID int64, name string) (bool, error)
	ListByOwner(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error)
	// SearchNames returns up to limit names starting with prefix, alphabetically.
	SearchNames(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error)
	MostUsed(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error)
	Oldest(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error)
}
