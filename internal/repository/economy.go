package repository

import (
	"context"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// Economy defines the data access interface for wallets, the item catalog and inventories
type Economy interface {
	// GetWallet returns nil, nil when the user never claimed or spent anything.
	GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error)

	// RecordDaily credits amount, stores the streak and stamps the claim time. Returns the new balance.
	RecordDaily(ctx context.Context, userID, amount int64, streak int, claimedAt time.Time) (int64, error)

	ListItems(ctx context.Context, kind string) ([]domain.Item, error)

	// GetItemByKey returns nil, nil for unknown keys.
	GetItemByKey(ctx context.Context, key string) (*domain.Item, error)

	// Purchase debits the item price and adds it to the inventory in one transaction.
	// Returns domain.ErrAlreadyOwned or domain.ErrInsufficientFunds without side effects.
	Purchase(ctx context.Context, userID int64, item domain.Item) (int64, error)

	OwnedItems(ctx context.Context, userID int64, kind string) ([]domain.Item, error)
	HasItem(ctx context.Context, userID int64, key string) (bool, error)
}
