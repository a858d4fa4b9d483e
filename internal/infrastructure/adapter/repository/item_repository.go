package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Minyanaing/item-market/internal/domain/entity"
	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ItemRepository implements the ItemRepository port using GORM
type ItemRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewItemRepository creates a new ItemRepository instance
func NewItemRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ItemRepository {
	return &ItemRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an item model to an entity
func (r *ItemRepository) modelToEntity(itemModel *model.Item) (*entity.Item, error) {
	item, err := entity.NewItem(
		itemModel.ID,
		itemModel.Name,
		itemModel.Barcode,
		entity.FormatCents(itemModel.Price),
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create item entity", map[string]any{
			"item_id": itemModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create item entity: %s", errs.ErrInternalServer, err.Error())
	}

	item.SetOwnerID(itemModel.OwnerID)
	item.CreatedAt = itemModel.CreatedAt
	item.UpdatedAt = itemModel.UpdatedAt

	return item, nil
}

// modelsToEntities converts a slice of item models
func (r *ItemRepository) modelsToEntities(itemModels []model.Item) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0, len(itemModels))
	for i := range itemModels {
		item, err := r.modelToEntity(&itemModels[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// handleDatabaseError standardizes database error handling
func (r *ItemRepository) handleDatabaseError(operation string, err error, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Item not found", map[string]any{
			"item": key,
		})
		return errs.ErrItemNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"item":  key,
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateItem
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByName resolves a catalog lookup key to at most one item
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&itemModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting item by name", result.Error, name)
	}

	return r.modelToEntity(&itemModel)
}

// ListAvailable returns all items currently without an owner
func (r *ItemRepository) ListAvailable(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.Item
	result := r.db.WithContext(ctx).Where("owner_id IS NULL").Order("id").Find(&itemModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing available items", result.Error, nil)
	}

	return r.modelsToEntities(itemModels)
}

// ListByOwner returns all items currently owned by the given user
func (r *ItemRepository) ListByOwner(ctx context.Context, userID uint64) ([]*entity.Item, error) {
	var itemModels []model.Item
	result := r.db.WithContext(ctx).Where("owner_id = ?", userID).Order("id").Find(&itemModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing owned items", result.Error, userID)
	}

	return r.modelsToEntities(itemModels)
}

// Create persists a new catalog item
func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.Item{
		ID:        item.ID,
		Name:      item.Name,
		Barcode:   item.Barcode,
		Price:     item.Price(),
		OwnerID:   item.OwnerID(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&itemModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating item", result.Error, item.Name)
	}

	item.ID = itemModel.ID

	r.logger.Info("Item created", map[string]any{
		"item_id": item.ID,
		"name":    item.Name,
		"price":   item.FormattedPrice(),
	})
	return nil
}

// Update persists the current state of the item, including ownership
func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	result := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"owner_id":   item.OwnerID(),
			"updated_at": item.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating item", result.Error, item.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Item not found during update", map[string]any{
			"item_id": item.ID,
		})
		return errs.ErrItemNotFound
	}

	r.logger.Debug("Item updated", map[string]any{
		"item_id":  item.ID,
		"name":     item.Name,
		"owner_id": item.OwnerID(),
	})
	return nil
}
