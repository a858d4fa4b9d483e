package entity

import (
	"time"

	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
)

// User represents a registered user with a spendable balance
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique handle used for login and ownership
	Email        string    // Contact address collected at registration
	passwordHash string    // Opaque verifiable credential (private)
	balance      int64     // Balance stored in cents to avoid floating point precision issues (private)
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with the given identity and starting balance
func NewUser(id uint64, username, email, passwordHash, startingBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	balanceInCents, err := ParseAmount(startingBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		passwordHash: passwordHash,
		balance:      balanceInCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewPendingUser creates a user that has not been persisted yet. The ID is
// zero until the store assigns one on insert.
func NewPendingUser(username, email, passwordHash, startingBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	balanceInCents, err := ParseAmount(startingBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		passwordHash: passwordHash,
		balance:      balanceInCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// PasswordHash returns the stored credential hash (for internal use)
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CanPurchase is the purchase eligibility check: the item must be unowned
// and the user's balance must cover the price. Evaluated without side effects.
func (u *User) CanPurchase(item *Item) bool {
	return item.Available() && u.balance >= item.Price()
}

// CanSell is the sale eligibility check: the user must currently own the item.
// Evaluated without side effects.
func (u *User) CanSell(item *Item) bool {
	return item.OwnedBy(u.ID)
}

// ApplyPurchase deducts the item price from the balance.
// Returns an error if the balance would go negative.
func (u *User) ApplyPurchase(priceInCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < priceInCents {
		return errs.ErrInsufficientBalance
	}

	u.balance -= priceInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplySale credits the item price back to the balance
func (u *User) ApplySale(priceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += priceInCents
	u.UpdatedAt = timeProvider.Now()
}
