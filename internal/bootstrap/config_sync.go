package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// ShopLister lists the purchasable items
type ShopLister interface {
	Shop(ctx context.Context) ([]domain.Item, error)
}

// BackgroundIndex reports which backgrounds have an image on disk
type BackgroundIndex interface {
	Has(key string) bool
}

// CheckShopBackgrounds compares the seeded shop against the image catalog and
// returns the keys of backgrounds that can be bought but not drawn. They stay
// purchasable; the renderer draws a solid fill for them.
func CheckShopBackgrounds(ctx context.Context, shop ShopLister, catalog BackgroundIndex) ([]string, error) {
	slog.Info(LogMsgCheckingCatalog)

	items, err := shop.Shop(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedListShop, err)
	}

	var missing []string
	for _, item := range items {
		if item.Kind != domain.ItemKindBackground || catalog.Has(item.Key) {
			continue
		}
		slog.Warn(LogMsgBackgroundNoImage, "key", item.Key)
		missing = append(missing, item.Key)
	}

	if len(missing) == 0 {
		slog.Info(LogMsgCatalogConsistent, "items", len(items))
	}
	return missing, nil
}
