package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// GuildConfigRepository implements repository.GuildConfig for PostgreSQL
type GuildConfigRepository struct {
	db *pgxpool.Pool
}

// NewGuildConfigRepository creates a new GuildConfigRepository
func NewGuildConfigRepository(db *pgxpool.Pool) *GuildConfigRepository {
	return &GuildConfigRepository{db: db}
}

// ensureGuildSQL creates the default row without touching an existing one
const ensureGuildSQL = `INSERT INTO guild_config (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING`

// GetOrCreate returns the guild's settings, inserting defaults on first access
func (r *GuildConfigRepository) GetOrCreate(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	if _, err := r.db.Exec(ctx, ensureGuildSQL, guildID); err != nil {
		return nil, wrap(opGetGuildConfig, err)
	}

	cfg := &domain.GuildConfig{GuildID: guildID}
	err := r.db.QueryRow(ctx, `
		SELECT prefix, mention_prefix, xp_enabled, levelup_messages_enabled, created_at, updated_at
		FROM guild_config WHERE guild_id = $1`, guildID).
		Scan(&cfg.Prefix, &cfg.MentionPrefix, &cfg.XPEnabled, &cfg.LevelupMessagesEnabled, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, wrap(opGetGuildConfig, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT command FROM guild_disabled_commands WHERE guild_id = $1 ORDER BY command`, guildID)
	if err != nil {
		return nil, wrap(opGetGuildConfig, err)
	}
	defer rows.Close()

	cfg.DisabledCommands = make([]string, 0)
	for rows.Next() {
		var command string
		if err := rows.Scan(&command); err != nil {
			return nil, wrap(opScanRow, err)
		}
		cfg.DisabledCommands = append(cfg.DisabledCommands, command)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return cfg, nil
}

// SetXPEnabled toggles XP accrual for the guild
func (r *GuildConfigRepository) SetXPEnabled(ctx context.Context, guildID int64, enabled bool) error {
	return r.upsertColumn(ctx, "xp_enabled", guildID, enabled)
}

// SetLevelupMessages toggles level-up announcements for the guild
func (r *GuildConfigRepository) SetLevelupMessages(ctx context.Context, guildID int64, enabled bool) error {
	return r.upsertColumn(ctx, "levelup_messages_enabled", guildID, enabled)
}

// SetPrefix stores a custom prefix; nil restores the default
func (r *GuildConfigRepository) SetPrefix(ctx context.Context, guildID int64, prefix *string) error {
	return r.upsertColumn(ctx, "prefix", guildID, prefix)
}

// SetMentionPrefix toggles whether mentioning the bot works as a prefix
func (r *GuildConfigRepository) SetMentionPrefix(ctx context.Context, guildID int64, enabled bool) error {
	return r.upsertColumn(ctx, "mention_prefix", guildID, enabled)
}

// upsertColumn writes one settings column. column is always one of the
// constant names above, never user input.
func (r *GuildConfigRepository) upsertColumn(ctx context.Context, column string, guildID int64, value any) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guild_config (guild_id, `+column+`) VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET `+column+` = EXCLUDED.`+column+`, updated_at = NOW()`, guildID, value)
	if err != nil {
		return wrap(opUpdateGuildConfig, err)
	}
	return nil
}

// DisableCommand records command as disabled; reports false when it already was
func (r *GuildConfigRepository) DisableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, wrap(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, ensureGuildSQL, guildID); err != nil {
		return false, wrap(opToggleCommand, err)
	}
	tag, err := tx.Exec(ctx, `
		INSERT INTO guild_disabled_commands (guild_id, command) VALUES ($1, $2)
		ON CONFLICT (guild_id, command) DO NOTHING`, guildID, command)
	if err != nil {
		return false, wrap(opToggleCommand, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, wrap(opCommitTx, err)
	}
	return tag.RowsAffected() == 1, nil
}

// EnableCommand removes command from the disabled set; reports false when it was not disabled
func (r *GuildConfigRepository) EnableCommand(ctx context.Context, guildID int64, command string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM guild_disabled_commands WHERE guild_id = $1 AND command = $2`, guildID, command)
	if err != nil {
		return false, wrap(opToggleCommand, err)
	}
	return tag.RowsAffected() == 1, nil
}
