package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/Minyanaing/item-market/internal/domain/entity"
	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/domain/port/persistence"
	"github.com/Minyanaing/item-market/internal/domain/port/usecase"
)

// Service implements the transaction processor: it validates purchase and
// sale attempts and applies the ownership transfer and balance adjustment
// as one committed unit per operation.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new market service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AttemptPurchase resolves the item name and, when eligible, transfers
// ownership to the user and deducts the price from their balance inside a
// single persistence transaction. An unknown item name is silently ignored.
func (s *Service) AttemptPurchase(ctx context.Context, userID uint64, itemName string) (*entity.Notification, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin purchase transaction: %w", err)
	}

	items := s.uow.Items(txCtx)
	users := s.uow.Users(txCtx)

	item, err := items.GetByName(txCtx, itemName)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrItemNotFound) {
			// Lookup miss: no mutation, no notification
			s.logger.Debug("Purchase skipped, item not in catalog", map[string]any{
				"user_id":   userID,
				"item_name": itemName,
			})
			return nil, nil
		}
		return nil, err
	}

	user, err := users.GetByID(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if !user.CanPurchase(item) {
		_ = s.uow.Rollback(txCtx)

		// The two rejection causes are logged but not distinguished in the
		// user-facing message
		cause := errs.ErrItemAlreadyOwned
		if item.Available() {
			cause = errs.NewInsufficientBalanceError(user.ID, item.FormattedPrice(), user.FormattedBalance())
		}
		rejection := &errs.MarketError{
			Operation: "purchase",
			UserID:    user.ID,
			ItemName:  item.Name,
			Price:     item.FormattedPrice(),
			Balance:   user.FormattedBalance(),
			Err:       cause,
		}
		s.logger.Info("Purchase rejected", rejection.LogFields())

		notification := entity.NewDangerNotification(
			"Unfortunately, you could not purchase %s!", item.Name)
		return &notification, nil
	}

	item.AssignOwner(user.ID, s.timeProvider)
	if err := user.ApplyPurchase(item.Price(), s.timeProvider); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := items.Update(txCtx, item); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if err := users.Update(txCtx, user); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	s.logger.Info("Item purchased", map[string]any{
		"user_id":     user.ID,
		"item_name":   item.Name,
		"price":       item.FormattedPrice(),
		"new_balance": user.FormattedBalance(),
	})

	notification := entity.NewSuccessNotification(
		"Congratulations! You purchased %s for $%s", item.Name, item.FormattedPrice())
	return &notification, nil
}

// AttemptSale resolves the item name and, when the user owns the item,
// returns it to the market and credits the price back, again as a single
// persistence transaction. An unknown item name is silently ignored.
func (s *Service) AttemptSale(ctx context.Context, userID uint64, itemName string) (*entity.Notification, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin sale transaction: %w", err)
	}

	items := s.uow.Items(txCtx)
	users := s.uow.Users(txCtx)

	item, err := items.GetByName(txCtx, itemName)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrItemNotFound) {
			s.logger.Debug("Sale skipped, item not in catalog", map[string]any{
				"user_id":   userID,
				"item_name": itemName,
			})
			return nil, nil
		}
		return nil, err
	}

	user, err := users.GetByID(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if !user.CanSell(item) {
		_ = s.uow.Rollback(txCtx)

		rejection := &errs.MarketError{
			Operation: "sale",
			UserID:    user.ID,
			ItemName:  item.Name,
			Price:     item.FormattedPrice(),
			Balance:   user.FormattedBalance(),
			Err:       errs.ErrItemNotOwned,
		}
		s.logger.Info("Sale rejected", rejection.LogFields())

		notification := entity.NewDangerNotification(
			"Something went wrong with selling %s!", item.Name)
		return &notification, nil
	}

	item.ReleaseOwner(s.timeProvider)
	user.ApplySale(item.Price(), s.timeProvider)

	if err := items.Update(txCtx, item); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if err := users.Update(txCtx, user); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	s.logger.Info("Item sold back to market", map[string]any{
		"user_id":     user.ID,
		"item_name":   item.Name,
		"price":       item.FormattedPrice(),
		"new_balance": user.FormattedBalance(),
	})

	notification := entity.NewSuccessNotification(
		"Congratulations! You sold %s back to market!", item.Name)
	return &notification, nil
}

// ProcessMarketRequest handles one market form submission. The purchase
// branch is fully resolved and committed before the sale branch is
// evaluated; the two are independent atomic units with no rollback
// coupling between them.
func (s *Service) ProcessMarketRequest(ctx context.Context, userID uint64, req usecase.MarketRequest) ([]entity.Notification, error) {
	var notifications []entity.Notification

	if req.PurchasedItem != nil {
		notification, err := s.AttemptPurchase(ctx, userID, *req.PurchasedItem)
		if err != nil {
			return notifications, err
		}
		if notification != nil {
			notifications = append(notifications, *notification)
		}
	}

	if req.SoldItem != nil {
		notification, err := s.AttemptSale(ctx, userID, *req.SoldItem)
		if err != nil {
			return notifications, err
		}
		if notification != nil {
			notifications = append(notifications, *notification)
		}
	}

	return notifications, nil
}

// GetCatalog returns the market view for the given user: items available
// for purchase, the user's owned items, and their current balance.
func (s *Service) GetCatalog(ctx context.Context, userID uint64) (*usecase.CatalogView, error) {
	users := s.uow.Users(ctx)
	items := s.uow.Items(ctx)

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	available, err := items.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := items.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.CatalogView{
		Balance:        user.FormattedBalance(),
		AvailableItems: available,
		OwnedItems:     owned,
	}, nil
}
