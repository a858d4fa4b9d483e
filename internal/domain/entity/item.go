package entity

import (
	"time"

	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
)

// Item represents a catalog item that can be bought and sold back.
// An item has at most one owner at a time; a nil owner means the item
// is available in the market.
type Item struct {
	ID        uint64    // Unique identifier for the item
	Name      string    // Unique name within the catalog
	Barcode   string    // Identifying code printed on the item
	price     int64     // Price stored in cents (private, immutable after creation)
	ownerID   *uint64   // Current owner, nil when available in the market (private)
	CreatedAt time.Time // When the item was created
	UpdatedAt time.Time // When the item was last updated
}

// NewItem creates a new catalog item with the given name, barcode and price
func NewItem(id uint64, name, barcode, price string, timeProvider coreport.TimeProvider) (*Item, error) {
	if name == "" {
		return nil, errs.ErrInvalidItemName
	}

	priceInCents, err := ParseAmount(price)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Item{
		ID:        id,
		Name:      name,
		Barcode:   barcode,
		price:     priceInCents,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Price returns the item price in cents
func (i *Item) Price() int64 {
	return i.price
}

// FormattedPrice returns the price as a string with 2 decimal places
func (i *Item) FormattedPrice() string {
	return FormatCents(i.price)
}

// OwnerID returns the current owner, or nil when the item is in the market
func (i *Item) OwnerID() *uint64 {
	return i.ownerID
}

// Available reports whether the item has no owner
func (i *Item) Available() bool {
	return i.ownerID == nil
}

// OwnedBy reports whether the item is currently owned by the given user
func (i *Item) OwnedBy(userID uint64) bool {
	return i.ownerID != nil && *i.ownerID == userID
}

// AssignOwner transfers the item to the given user
func (i *Item) AssignOwner(userID uint64, timeProvider coreport.TimeProvider) {
	owner := userID
	i.ownerID = &owner
	i.UpdatedAt = timeProvider.Now()
}

// ReleaseOwner returns the item to the market
func (i *Item) ReleaseOwner(timeProvider coreport.TimeProvider) {
	i.ownerID = nil
	i.UpdatedAt = timeProvider.Now()
}

// SetOwnerID sets the owner directly (for internal use, like repositories)
func (i *Item) SetOwnerID(ownerID *uint64) {
	i.ownerID = ownerID
}
