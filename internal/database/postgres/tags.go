package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// TagRepository implements repository.Tags for PostgreSQL
type TagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{db: db}
}

const tagColumns = `id, guild_id, name, owner_id, content, usages, created_at, updated_at`

// Create inserts a new tag
func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	created, err := scanTag(r.db.QueryRow(ctx, `
		INSERT INTO tags (guild_id, name, owner_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING `+tagColumns,
		tag.GuildID, tag.Name, tag.OwnerID, tag.Content))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTagExists
		}
		return nil, wrap(opCreateTag, err)
	}
	return created, nil
}

// Get returns the named tag without counting a use
func (r *TagRepository) Get(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	tag, err := scanTag(r.db.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE guild_id = $1 AND name = $2`, guildID, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(opGetTag, err)
	}
	return tag, nil
}

// Use counts one use of the tag in the same statement that reads it
func (r *TagRepository) Use(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	tag, err := scanTag(r.db.QueryRow(ctx, `
		UPDATE tags SET usages = usages + 1
		WHERE guild_id = $1 AND name = $2
		RETURNING `+tagColumns, guildID, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(opUseTag, err)
	}
	return tag, nil
}

// UpdateContent replaces the content of a tag the owner holds
func (r *TagRepository) UpdateContent(ctx context.Context, guildID, ownerID int64, name, content string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE tags SET content = $4, updated_at = NOW()
		WHERE guild_id = $1 AND owner_id = $2 AND name = $3`, guildID, ownerID, name, content)
	if err != nil {
		return false, wrap(opUpdateTag, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Rename moves a tag the owner holds to a free name
func (r *TagRepository) Rename(ctx context.Context, guildID, ownerID int64, name, newName string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE tags SET name = $4, updated_at = NOW()
		WHERE guild_id = $1 AND owner_id = $2 AND name = $3`, guildID, ownerID, name, newName)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrTagExists
		}
		return false, wrap(opUpdateTag, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes a tag the owner holds
func (r *TagRepository) Delete(ctx context.Context, guildID, ownerID int64, name string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tags WHERE guild_id = $1 AND owner_id = $2 AND name = $3`, guildID, ownerID, name)
	if err != nil {
		return false, wrap(opDeleteTag, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByOwner returns the member's tags alphabetically
func (r *TagRepository) ListByOwner(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE guild_id = $1 AND owner_id = $2 ORDER BY name`, guildID, ownerID)
	if err != nil {
		return nil, wrap(opListTags, err)
	}
	return collectTags(rows)
}

// SearchNames lists tag names by prefix for listings and autocomplete
func (r *TagRepository) SearchNames(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name FROM tags
		WHERE guild_id = $1 AND starts_with(name, $2)
		ORDER BY name
		LIMIT $3`, guildID, prefix, limit)
	if err != nil {
		return nil, wrap(opListTags, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrap(opScanRow, err)
	}
	return names, nil
}

// MostUsed returns the guild's most used tags, oldest first among ties
func (r *TagRepository) MostUsed(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tagColumns+` FROM tags
		WHERE guild_id = $1
		ORDER BY usages DESC, created_at, id
		LIMIT $2`, guildID, limit)
	if err != nil {
		return nil, wrap(opListTags, err)
	}
	return collectTags(rows)
}

// Oldest returns the guild's earliest tags
func (r *TagRepository) Oldest(ctx context.Context, guildID int64, limit int) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tagColumns+` FROM tags
		WHERE guild_id = $1
		ORDER BY created_at, id
		LIMIT $2`, guildID, limit)
	if err != nil {
		return nil, wrap(opListTags, err)
	}
	return collectTags(rows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.GuildID, &t.Name, &t.OwnerID, &t.Content, &t.Usages, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTags(rows pgx.Rows) ([]domain.Tag, error) {
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, wrap(opScanRow, err)
		}
		tags = append(tags, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return tags, nil
}
