package economy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/cooldown"
	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Service defines the interface for economy operations
type Service interface {
	Daily(ctx context.Context, userID int64) (*domain.DailyResult, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	Shop(ctx context.Context) ([]domain.Item, error)
	Buy(ctx context.Context, userID int64, key string) (*domain.PurchaseResult, error)
	OwnedBackgrounds(ctx context.Context, userID int64) ([]domain.Item, error)

	// OwnsBackground reports whether the user bought the background. The default background is always owned.
	OwnsBackground(ctx context.Context, userID int64, key string) (bool, error)
}

type service struct {
	repo      repository.Economy
	cooldowns cooldown.Service
	now       func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Economy, cooldowns cooldown.Service) Service {
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		now:       time.Now,
	}
}

// Daily pays out the daily reward at most once per cooldown window.
// A claim on cooldown returns a cooldown.ErrOnCooldown.
func (s *service) Daily(ctx context.Context, userID int64) (*domain.DailyResult, error) {
	log := logger.FromContext(ctx)

	var result *domain.DailyResult
	err := s.cooldowns.EnforceCooldown(ctx, userID, domain.ActionDaily, func() error {
		wallet, err := s.repo.GetWallet(ctx, userID)
		if err != nil {
			metrics.StoreErrors.WithLabelValues(storeKindWallet).Inc()
			return fmt.Errorf(ErrMsgGetWalletFailed, err)
		}

		now := s.now()
		streak, lost := NextStreak(wallet, now)
		amount := DailyPayout(streak)

		balance, err := s.repo.RecordDaily(ctx, userID, amount, streak, now)
		if err != nil {
			metrics.StoreErrors.WithLabelValues(storeKindWallet).Inc()
			return fmt.Errorf(ErrMsgRecordDailyFailed, err)
		}

		if lost {
			log.Info(LogMsgStreakLost, "userID", userID, "previous", wallet.Streak)
		}
		result = &domain.DailyResult{Amount: amount, Streak: streak, NewBalance: balance, StreakLost: lost}
		return nil
	})
	if err != nil {
		var cd cooldown.ErrOnCooldown
		if errors.As(err, &cd) {
			log.Debug(LogMsgDailyDenied, "userID", userID, "remaining", cd.Remaining)
		}
		return nil, err
	}

	metrics.MoneyEarned.Add(float64(result.Amount))
	log.Info(LogMsgDailyClaimed, "userID", userID, "amount", result.Amount, "streak", result.Streak)
	return result, nil
}

func (s *service) Balance(ctx context.Context, userID int64) (int64, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindWallet).Inc()
		return 0, fmt.Errorf(ErrMsgGetWalletFailed, err)
	}
	if wallet == nil {
		return 0, nil
	}
	return wallet.Balance, nil
}

func (s *service) Shop(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx, domain.ItemKindBackground)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindInventory).Inc()
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// Buy purchases a background by key.
// Fails with domain.ErrNotFound, domain.ErrAlreadyOwned or domain.ErrInsufficientFunds.
func (s *service) Buy(ctx context.Context, userID int64, key string) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	item, err := s.repo.GetItemByKey(ctx, key)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindInventory).Inc()
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil || item.Kind != domain.ItemKindBackground {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, key, domain.ErrNotFound)
	}

	balance, err := s.repo.Purchase(ctx, userID, *item)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyOwned) || errors.Is(err, domain.ErrInsufficientFunds) {
			log.Info(LogMsgBuyRejected, "userID", userID, "item", key, "reason", err)
			return nil, err
		}
		metrics.StoreErrors.WithLabelValues(storeKindInventory).Inc()
		return nil, fmt.Errorf(ErrMsgPurchaseFailed, err)
	}

	metrics.ItemsBought.WithLabelValues(item.Key).Inc()
	metrics.MoneySpent.Add(float64(item.Price))
	log.Info(LogMsgItemPurchased, "userID", userID, "item", item.Key, "price", item.Price, "balance", balance)
	return &domain.PurchaseResult{Item: *item, NewBalance: balance}, nil
}

func (s *service) OwnedBackgrounds(ctx context.Context, userID int64) ([]domain.Item, error) {
	items, err := s.repo.OwnedItems(ctx, userID, domain.ItemKindBackground)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindInventory).Inc()
		return nil, fmt.Errorf(ErrMsgOwnedItemsFailed, err)
	}
	return items, nil
}

func (s *service) OwnsBackground(ctx context.Context, userID int64, key string) (bool, error) {
	if key == domain.DefaultBackground {
		return true, nil
	}
	owned, err := s.repo.HasItem(ctx, userID, key)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(storeKindInventory).Inc()
		return false, fmt.Errorf(ErrMsgHasItemFailed, err)
	}
	return owned, nil
}
