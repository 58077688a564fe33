package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// EconomyRepository implements repository.Economy for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

const itemColumns = `i.id, i.key, i.kind, i.name, i.price`

// GetWallet returns the user's wallet, or nil when they have none
func (r *EconomyRepository) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	w := &domain.Wallet{UserID: userID}
	err := r.db.QueryRow(ctx,
		`SELECT balance, streak, last_daily_at FROM wallets WHERE user_id = $1`, userID).
		Scan(&w.Balance, &w.Streak, &w.LastDailyAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(opGetWallet, err)
	}
	return w, nil
}

// RecordDaily credits a daily payout and returns the new balance
func (r *EconomyRepository) RecordDaily(ctx context.Context, userID, amount int64, streak int, claimedAt time.Time) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO wallets (user_id, balance, streak, last_daily_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance,
		    streak = EXCLUDED.streak,
		    last_daily_at = EXCLUDED.last_daily_at
		RETURNING balance`, userID, amount, streak, claimedAt).Scan(&balance)
	if err != nil {
		return 0, wrap(opRecordDaily, err)
	}
	return balance, nil
}

// ListItems returns the catalog of the given kind, cheapest first
func (r *EconomyRepository) ListItems(ctx context.Context, kind string) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items i WHERE i.kind = $1 ORDER BY i.price, i.key`, kind)
	if err != nil {
		return nil, wrap(opListItems, err)
	}
	return collectItems(rows)
}

// GetItemByKey returns the item, or nil for unknown keys
func (r *EconomyRepository) GetItemByKey(ctx context.Context, key string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items i WHERE i.key = $1`, key).
		Scan(&item.ID, &item.Key, &item.Kind, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(opGetItem, err)
	}
	return &item, nil
}

// Purchase debits the price and grants the item atomically
func (r *EconomyRepository) Purchase(ctx context.Context, userID int64, item domain.Item) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, wrap(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO inventory (user_id, item_id) VALUES ($1, $2)
		ON CONFLICT (user_id, item_id) DO NOTHING`, userID, item.ID)
	if err != nil {
		return 0, wrap(opPurchase, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrAlreadyOwned
	}

	var balance int64
	err = tx.QueryRow(ctx, `
		UPDATE wallets SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance`, userID, item.Price).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if item.Price > 0 {
				return 0, domain.ErrInsufficientFunds
			}
			// free items need no wallet
			balance = 0
		} else {
			return 0, wrap(opPurchase, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, wrap(opCommitTx, err)
	}
	return balance, nil
}

// OwnedItems returns the user's items of the given kind
func (r *EconomyRepository) OwnedItems(ctx context.Context, userID int64, kind string) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM inventory inv
		JOIN items i ON i.id = inv.item_id
		WHERE inv.user_id = $1 AND i.kind = $2
		ORDER BY inv.acquired_at, i.key`, userID, kind)
	if err != nil {
		return nil, wrap(opInventory, err)
	}
	return collectItems(rows)
}

// HasItem reports whether the user owns the item with the given key
func (r *EconomyRepository) HasItem(ctx context.Context, userID int64, key string) (bool, error) {
	var owned bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM inventory inv JOIN items i ON i.id = inv.item_id
			WHERE inv.user_id = $1 AND i.key = $2
		)`, userID, key).Scan(&owned)
	if err != nil {
		return false, wrap(opInventory, err)
	}
	return owned, nil
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Key, &item.Kind, &item.Name, &item.Price); err != nil {
			return nil, wrap(opScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}
	return items, nil
}
