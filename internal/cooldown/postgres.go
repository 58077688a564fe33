package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/database"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	now    func() time.Time
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
		now:    time.Now,
	}
}

// CheckCooldown checks if a user's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, userID int64, action string) (bool, time.Duration, error) {
	lastUsed, err := b.getLastUsed(ctx, userID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	if lastUsed == nil {
		// Never used - not on cooldown
		return false, 0, nil
	}

	onCooldown, remaining := b.checkCooldownInternal(b.now(), lastUsed, b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown atomically checks cooldown and executes action if allowed
// Uses check-then-lock pattern for performance
func (b *postgresBackend) EnforceCooldown(ctx context.Context, userID int64, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	// PHASE 1: Cheap unlocked check - fast rejection for repeat attempts
	onCooldown, remaining, err := b.CheckCooldown(ctx, userID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	// PHASE 2: Transaction with advisory lock
	// Advisory locks work even when no row exists (unlike SELECT FOR UPDATE)
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginClaimFailed, database.Classify(err))
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, sqlAdvisoryLock, hashUserAction(userID, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, database.Classify(err))
	}

	// Recheck with the lock held
	lastUsed, err := b.getLastUsedFrom(ctx, tx, userID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgRecheckFailed, err)
	}
	if lastUsed != nil {
		onCooldown, remaining := b.checkCooldownInternal(b.now(), lastUsed, b.config.GetCooldownDuration(action))
		if onCooldown {
			log.Debug(LogMsgLostClaimRace,
				"action", action, "userID", userID, "remaining", remaining)
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}

	// Execute user function
	if err := fn(); err != nil {
		// User function failed - rollback, don't update cooldown
		return err
	}

	if err := b.updateCooldown(ctx, tx, userID, action, b.now()); err != nil {
		return fmt.Errorf(ErrMsgStampFailed, err)
	}

	// Commit transaction (releases advisory lock automatically)
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitClaimFailed, database.Classify(err))
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "userID", userID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, userID int64, action string) error {
	_, err := b.db.Exec(ctx, sqlDeleteCooldown, userID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, database.Classify(err))
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, userID int64, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, userID, action)
}

func (b *postgresBackend) getLastUsed(ctx context.Context, userID int64, action string) (*time.Time, error) {
	return b.getLastUsedFrom(ctx, b.db, userID, action)
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (b *postgresBackend) getLastUsedFrom(ctx context.Context, q querier, userID int64, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := q.QueryRow(ctx, sqlSelectLastUsed, userID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, database.Classify(err))
	}
	return &lastUsed, nil
}

func (b *postgresBackend) updateCooldown(ctx context.Context, q querier, userID int64, action string, timestamp time.Time) error {
	_, err := q.Exec(ctx, sqlUpsertCooldown, userID, action, timestamp)
	return database.Classify(err)
}

// hashUserAction creates a consistent int64 hash from userID + action for advisory locking
func hashUserAction(userID int64, action string) int64 {
	h := sha256.Sum256([]byte(strconv.FormatInt(userID, 10) + lockKeySeparator + action))
	// Use first 8 bytes as int64, masking MSB to ensure positive value and avoid overflow warning
	return int64(binary.BigEndian.Uint64(h[:8]) & lockKeyMask)
}

func (b *postgresBackend) checkCooldownInternal(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
