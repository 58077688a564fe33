package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// BlacklistRepository implements repository.Blacklist for PostgreSQL
type BlacklistRepository struct {
	db *pgxpool.Pool
}

// NewBlacklistRepository creates a new BlacklistRepository
func NewBlacklistRepository(db *pgxpool.Pool) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

type blacklistTable struct {
	name   string
	column string
}

var (
	guildBlacklist = blacklistTable{name: "guild_blacklist", column: "guild_id"}
	userBlacklist  = blacklistTable{name: "user_blacklist", column: "user_id"}
)

func (r *BlacklistRepository) GetGuild(ctx context.Context, guildID int64) (*domain.BlacklistEntry, error) {
	return r.get(ctx, guildBlacklist, guildID)
}

func (r *BlacklistRepository) GetUser(ctx context.Context, userID int64) (*domain.BlacklistEntry, error) {
	return r.get(ctx, userBlacklist, userID)
}

func (r *BlacklistRepository) AddGuild(ctx context.Context, guildID int64, reason string) error {
	return r.add(ctx, guildBlacklist, guildID, reason)
}

func (r *BlacklistRepository) AddUser(ctx context.Context, userID int64, reason string) error {
	return r.add(ctx, userBlacklist, userID, reason)
}

func (r *BlacklistRepository) RemoveGuild(ctx context.Context, guildID int64) (bool, error) {
	return r.remove(ctx, guildBlacklist, guildID)
}

func (r *BlacklistRepository) RemoveUser(ctx context.Context, userID int64) (bool, error) {
	return r.remove(ctx, userBlacklist, userID)
}

func (r *BlacklistRepository) ListGuilds(ctx context.Context) ([]domain.BlacklistEntry, error) {
	return r.list(ctx, guildBlacklist)
}

func (r *BlacklistRepository) ListUsers(ctx context.Context) ([]domain.BlacklistEntry, error) {
	return r.list(ctx, userBlacklist)
}

func (r *BlacklistRepository) get(ctx context.Context, t blacklistTable, id int64) (*domain.BlacklistEntry, error) {
	var e domain.BlacklistEntry
	err := r.db.QueryRow(ctx,
		`SELECT `+t.column+`, reason, created_at FROM `+t.name+` WHERE `+t.column+` = $1`, id).
		Scan(&e.ID, &e.Reason, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(opGetBlacklist, err)
	}
	return &e, nil
}

func (r *BlacklistRepository) add(ctx context.Context, t blacklistTable, id int64, reason string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO `+t.name+` (`+t.column+`, reason) VALUES ($1, $2)
		ON CONFLICT (`+t.column+`) DO UPDATE SET reason = EXCLUDED.reason`, id, reason)
	if err != nil {
		return wrap(opUpdateBlacklist, err)
	}
	return nil
}

func (r *BlacklistRepository) remove(ctx context.Context, t blacklistTable, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM `+t.name+` WHERE `+t.column+` = $1`, id)
	if err != nil {
		return false, wrap(opUpdateBlacklist, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BlacklistRepository) list(ctx context.Context, t blacklistTable) ([]domain.BlacklistEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+t.column+`, reason, created_at FROM `+t.name+` ORDER BY created_at`)
	if err != nil {
		return nil, wrap(opListBlacklist, err)
	}
	defer rows.Close()

	entries := make([]domain.BlacklistEntry, 0)
	for rows.Next() {
		var e domain.BlacklistEntry
		if err := rows.Scan(&e.ID, &e.Reason, &e.CreatedAt); err != nil {
			return nil, wrap(opScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return entries, nil
}
