package usecase

import (
	"context"

	"github.com/Minyanaing/item-market/internal/domain/entity"
)

// MarketRequest represents one incoming market form submission.
// Both fields are optional; a nil field means no action was requested.
// The absent-field and unknown-item cases are deliberately not told apart:
// both silently skip.
type MarketRequest struct {
	PurchasedItem *string
	SoldItem      *string
}

// CatalogView is the data rendered on the market page for one user
type CatalogView struct {
	Balance        string
	AvailableItems []*entity.Item
	OwnedItems     []*entity.Item
}

// MarketUseCase defines the transaction processor operations
type MarketUseCase interface {
	// AttemptPurchase validates and applies a purchase of the named item.
	// A lookup miss is a silent no-op (nil notification, nil error). An
	// ineligible purchase emits a danger notification without mutation.
	// Returned errors are infrastructure failures only.
	AttemptPurchase(ctx context.Context, userID uint64, itemName string) (*entity.Notification, error)

	// AttemptSale validates and applies a sale of the named item back to
	// the market, with the same silent-miss and notification semantics.
	AttemptSale(ctx context.Context, userID uint64, itemName string) (*entity.Notification, error)

	// ProcessMarketRequest evaluates the purchase branch to completion and
	// then the sale branch, each as its own atomic unit, and returns the
	// accumulated notifications.
	ProcessMarketRequest(ctx context.Context, userID uint64, req MarketRequest) ([]entity.Notification, error)

	// GetCatalog returns the market view for the given user
	GetCatalog(ctx context.Context, userID uint64) (*CatalogView, error)
}
