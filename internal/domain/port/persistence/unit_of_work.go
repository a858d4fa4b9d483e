package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside a single persistence
// transaction. A purchase or sale mutates ownership and balance together;
// the unit of work guarantees no partially-applied state becomes visible.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// Items returns an item repository bound to the current transaction
	Items(ctx context.Context) ItemRepository
}
