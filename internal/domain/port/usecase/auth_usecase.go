package usecase

import (
	"context"

	"github.com/Minyanaing/item-market/internal/domain/entity"
)

// RegisterRequest carries the fields collected by the registration form
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned after a successful register or login. The token is
// the user's session; the notification is the flash shown on the next page.
type AuthResult struct {
	UserID       uint64
	Username     string
	Token        string
	Notification entity.Notification
}

// AuthUseCase defines registration and login operations
type AuthUseCase interface {
	// Register creates a user with the configured starting balance and logs
	// them in immediately
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already taken
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and issues a session token
	//
	// Possible errors:
	// - ErrInvalidCredentials: If username and password do not match
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
