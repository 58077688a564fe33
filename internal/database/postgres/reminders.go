package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// ReminderRepository implements repository.Reminders for PostgreSQL
type ReminderRepository struct {
	db *pgxpool.Pool
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{db: db}
}

const reminderColumns = `id, user_id, guild_id, channel_id, message, remind_at, repeat_every_seconds, created_at`

// Create inserts the reminder unless the user already holds limit of them.
// A per-user advisory lock makes the count and the insert one step.
func (r *ReminderRepository) Create(ctx context.Context, rem *domain.Reminder, limit int) (*domain.Reminder, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('reminders:' || $1::bigint, 0))`, rem.UserID); err != nil {
		return nil, wrap(opLockUser, err)
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM reminders WHERE user_id = $1`, rem.UserID).Scan(&count); err != nil {
		return nil, wrap(opCreateReminder, err)
	}
	if count >= limit {
		return nil, domain.ErrReminderCap
	}

	created, err := scanReminder(tx.QueryRow(ctx, `
		INSERT INTO reminders (user_id, guild_id, channel_id, message, remind_at, repeat_every_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reminderColumns,
		rem.UserID, nullableInt64(rem.GuildID), rem.ChannelID, rem.Message, rem.RemindAt,
		int32(rem.RepeatEvery/time.Second)))
	if err != nil {
		return nil, wrap(opCreateReminder, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap(opCommitTx, err)
	}
	return created, nil
}

// ListByUser returns the user's reminders, soonest first
func (r *ReminderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 ORDER BY remind_at, id`, userID)
	if err != nil {
		return nil, wrap(opListReminders, err)
	}
	return collectReminders(rows)
}

// Delete removes one of the user's reminders
func (r *ReminderRepository) Delete(ctx context.Context, userID, reminderID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, reminderID, userID)
	if err != nil {
		return false, wrap(opDeleteReminder, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimDue takes ownership of due reminders. Repeating reminders move forward by whole
// periods until they lie in the future; one-shot reminders are deleted.
func (r *ReminderRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.Reminder, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	rows, err := tx.Query(ctx, `
		SELECT `+reminderColumns+` FROM reminders
		WHERE remind_at <= $1
		ORDER BY remind_at, id
		LIMIT $2
		FOR UPDATE SKIP LOCKED`, now, limit)
	if err != nil {
		return nil, wrap(opClaimReminders, err)
	}
	due, err := collectReminders(rows)
	if err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	for _, rem := range due {
		if rem.Repeats() {
			batch.Queue(`UPDATE reminders SET remind_at = $2 WHERE id = $1`, rem.ID, nextOccurrence(rem, now))
		} else {
			batch.Queue(`DELETE FROM reminders WHERE id = $1`, rem.ID)
		}
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, wrap(opClaimReminders, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap(opCommitTx, err)
	}
	return due, nil
}

// nextOccurrence is the first repetition of rem strictly after now
func nextOccurrence(rem domain.Reminder, now time.Time) time.Time {
	next := rem.RemindAt.Add(rem.RepeatEvery)
	if !next.After(now) {
		missed := now.Sub(rem.RemindAt) / rem.RepeatEvery
		next = rem.RemindAt.Add((missed + 1) * rem.RepeatEvery)
	}
	return next
}

func scanReminder(row pgx.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	var repeatSeconds int32
	if err := row.Scan(&rem.ID, &rem.UserID, &rem.GuildID, &rem.ChannelID, &rem.Message,
		&rem.RemindAt, &repeatSeconds, &rem.CreatedAt); err != nil {
		return nil, err
	}
	rem.RepeatEvery = time.Duration(repeatSeconds) * time.Second
	return &rem, nil
}

func collectReminders(rows pgx.Rows) ([]domain.Reminder, error) {
	defer rows.Close()

	reminders := make([]domain.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, wrap(opScanRow, err)
		}
		reminders = append(reminders, *rem)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return reminders, nil
}
