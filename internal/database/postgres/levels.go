package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// LevelsRepository implements repository.Levels for PostgreSQL
type LevelsRepository struct {
	db *pgxpool.Pool
}

// NewLevelsRepository creates a new LevelsRepository
func NewLevelsRepository(db *pgxpool.Pool) *LevelsRepository {
	return &LevelsRepository{db: db}
}

const memberColumns = `user_id, guild_id, xp, level, last_award_at, accent_color, background_key, created_at`

// The update branch only fires when the previous award is at least one cooldown old,
// so two racing awards serialize on the row lock and the loser matches nothing.
const applyAwardSQL = `
	INSERT INTO member_levels (user_id, guild_id, xp, level, last_award_at, created_at)
	VALUES ($1, $2, $3, 1, $4, $4)
	ON CONFLICT (user_id, guild_id) DO UPDATE
	SET xp = member_levels.xp + EXCLUDED.xp,
	    last_award_at = EXCLUDED.last_award_at
	WHERE member_levels.last_award_at <= $5
	RETURNING xp, level`

const grantXPSQL = `
	INSERT INTO member_levels (user_id, guild_id, xp, level)
	VALUES ($1, $2, $3, 1)
	ON CONFLICT (user_id, guild_id) DO UPDATE
	SET xp = member_levels.xp + EXCLUDED.xp
	RETURNING xp, level`

// ApplyAward grants amount XP when the cooldown window has elapsed
func (r *LevelsRepository) ApplyAward(ctx context.Context, guildID, userID, amount int64, now time.Time, cooldown time.Duration, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	return r.award(ctx, opApplyXP, guildID, userID, amount, levelFor, applyAwardSQL, now, now.Add(-cooldown))
}

// GrantXP adds amount XP without consulting the cooldown
func (r *LevelsRepository) GrantXP(ctx context.Context, guildID, userID, amount int64, levelFor repository.LevelFunc) (*domain.AwardResult, error) {
	return r.award(ctx, opGrantXP, guildID, userID, amount, levelFor, grantXPSQL)
}

// award runs query (bound as user_id, guild_id, amount, extra...) and reconciles the
// stored level against the resulting total in the same transaction.
func (r *LevelsRepository) award(ctx context.Context, op string, guildID, userID, amount int64, levelFor repository.LevelFunc, query string, extra ...any) (*domain.AwardResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	var newXP int64
	var storedLevel int
	args := append([]any{userID, guildID, amount}, extra...)
	if err := tx.QueryRow(ctx, query, args...).Scan(&newXP, &storedLevel); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaceLoss
		}
		return nil, wrap(op, err)
	}

	newLevel := levelFor(newXP)
	if newLevel != storedLevel {
		if _, err := tx.Exec(ctx,
			`UPDATE member_levels SET level = $3 WHERE user_id = $1 AND guild_id = $2`,
			userID, guildID, newLevel); err != nil {
			return nil, wrap(opSyncLevel, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap(opCommitTx, err)
	}

	return &domain.AwardResult{
		XPGained:  amount,
		NewXP:     newXP,
		OldLevel:  storedLevel,
		NewLevel:  newLevel,
		LeveledUp: newLevel > storedLevel,
	}, nil
}

// GetProgress returns the member's row, or nil when they have none
func (r *LevelsRepository) GetProgress(ctx context.Context, guildID, userID int64) (*domain.MemberProgress, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM member_levels WHERE guild_id = $1 AND user_id = $2`,
		guildID, userID)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(opGetMember, err)
	}
	return m, nil
}

// TopMembers returns the first limit members of the guild ordered by xp, oldest row first on ties
func (r *LevelsRepository) TopMembers(ctx context.Context, guildID int64, limit int) ([]domain.RankedMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+memberColumns+` FROM member_levels
		WHERE guild_id = $1
		ORDER BY xp DESC, id ASC
		LIMIT $2`, guildID, limit)
	if err != nil {
		return nil, wrap(opTopN, err)
	}
	defer rows.Close()

	entries := make([]domain.RankedMember, 0, limit)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, wrap(opScanRow, err)
		}
		entries = append(entries, domain.RankedMember{MemberProgress: *m, Rank: len(entries) + 1})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return entries, nil
}

// MemberRank returns the member's row with its position in the full guild ordering
func (r *LevelsRepository) MemberRank(ctx context.Context, guildID, userID int64) (*domain.RankedMember, error) {
	row := r.db.QueryRow(ctx, `
		SELECT m.user_id, m.guild_id, m.xp, m.level, m.last_award_at, m.accent_color, m.background_key, m.created_at,
		       (SELECT COUNT(*) FROM member_levels o
		        WHERE o.guild_id = m.guild_id
		          AND (o.xp > m.xp OR (o.xp = m.xp AND o.id < m.id))) + 1 AS rank
		FROM member_levels m
		WHERE m.guild_id = $1 AND m.user_id = $2`, guildID, userID)

	var ranked domain.RankedMember
	var accent int32
	var rank int64
	err := row.Scan(&ranked.UserID, &ranked.GuildID, &ranked.XP, &ranked.Level, &ranked.LastAwardAt,
		&accent, &ranked.BackgroundKey, &ranked.CreatedAt, &rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(opRank, err)
	}
	ranked.AccentColor = uint32(accent)
	ranked.Rank = int(rank)
	return &ranked, nil
}

// SetAccentColor stores the member's accent color
func (r *LevelsRepository) SetAccentColor(ctx context.Context, guildID, userID int64, color uint32) error {
	return r.updateCosmetic(ctx,
		`UPDATE member_levels SET accent_color = $3 WHERE guild_id = $1 AND user_id = $2`,
		guildID, userID, int32(color))
}

// SetBackground stores the member's background key
func (r *LevelsRepository) SetBackground(ctx context.Context, guildID, userID int64, key string) error {
	return r.updateCosmetic(ctx,
		`UPDATE member_levels SET background_key = $3 WHERE guild_id = $1 AND user_id = $2`,
		guildID, userID, key)
}

func (r *LevelsRepository) updateCosmetic(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrap(opCosmetic, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (*domain.MemberProgress, error) {
	var m domain.MemberProgress
	var accent int32
	if err := row.Scan(&m.UserID, &m.GuildID, &m.XP, &m.Level, &m.LastAwardAt,
		&accent, &m.BackgroundKey, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.AccentColor = uint32(accent)
	return &m, nil
}
