package model

import (
	"time"
)

// Item represents the database model for catalog items
type Item struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null;size:64"`
	Barcode   string    `gorm:"not null;size:32"`
	Price     int64     `gorm:"not null"` // Price in cents
	OwnerID   *uint64   `gorm:"index"`    // NULL while the item is in the market
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}
