package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MinesocBot_Go/internal/database"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// wrap prefixes err with the failed operation and tags connectivity failures
// so callers can match domain.ErrStoreUnavailable.
func wrap(op string, err error) error {
	return fmt.Errorf("failed to %s: %w", op, database.Classify(err))
}

// nullableInt64 converts an optional id to a value pgx writes as NULL when absent.
func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
