package persistence

import (
	"context"

	"github.com/Minyanaing/item-market/internal/domain/entity"
)

// ItemRepository defines essential methods to interact with the catalog
type ItemRepository interface {
	// GetByName resolves a catalog lookup key to at most one item
	//
	// Possible errors:
	// - ErrItemNotFound: If no item has the given name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, name string) (*entity.Item, error)

	// ListAvailable returns all items currently without an owner
	ListAvailable(ctx context.Context) ([]*entity.Item, error)

	// ListByOwner returns all items currently owned by the given user
	ListByOwner(ctx context.Context, userID uint64) ([]*entity.Item, error)

	// Create persists a new catalog item (seeding)
	//
	// Possible errors:
	// - ErrDuplicateItem: If an item with the same name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, item *entity.Item) error

	// Update persists the current state of the item, including ownership
	//
	// Possible errors:
	// - ErrItemNotFound: If the item doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, item *entity.Item) error
}
