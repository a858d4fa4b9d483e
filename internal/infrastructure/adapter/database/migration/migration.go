package migration

import (
	"context"
	"errors"

	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database schema migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates or updates the schema for all models
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// seedItem describes one catalog entry created at startup
type seedItem struct {
	name    string
	barcode string
	price   int64 // cents
}

// defaultCatalog is the demo catalog created on first start
var defaultCatalog = []seedItem{
	{name: "Phone", barcode: "893212299897", price: 50000},
	{name: "Laptop", barcode: "123985473165", price: 90000},
	{name: "Keyboard", barcode: "231985128446", price: 15000},
}

// SeedCatalog inserts the default items if they are not present yet.
// Items are the only seeded entities; users are created at registration.
func SeedCatalog(ctx context.Context, db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	for _, seed := range defaultCatalog {
		var existing model.Item
		err := db.WithContext(ctx).Where("name = ?", seed.name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := timeProvider.Now()
		item := model.Item{
			Name:      seed.name,
			Barcode:   seed.barcode,
			Price:     seed.price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.WithContext(ctx).Create(&item).Error; err != nil {
			return err
		}

		logger.Info("Seeded catalog item", map[string]any{
			"name":    seed.name,
			"barcode": seed.barcode,
		})
	}

	return nil
}
