package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeItemAlreadyOwned    = 4004
	CodeItemNotOwned        = 4005
	CodeConstraintViolation = 4006
	CodeInvalidCredentials  = 4010
	CodeInvalidToken        = 4011
	CodeUserNotFound        = 4040
	CodeItemNotFound        = 4041
	CodeDuplicateUser       = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user cannot afford an item
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidUsername is returned when the username is empty
	ErrInvalidUsername = errors.New("username cannot be empty")

	// ErrInvalidItemName is returned when an item name is empty
	ErrInvalidItemName = errors.New("item name cannot be empty")

	// ErrItemNotFound is returned when the requested item is not in the catalog
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyOwned is returned when a purchase targets an item that has an owner
	ErrItemAlreadyOwned = errors.New("item is already owned")

	// ErrItemNotOwned is returned when a sale targets an item the user does not own
	ErrItemNotOwned = errors.New("item is not owned by this user")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when registering a username that is taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateItem is returned when seeding an item name that is taken
	ErrDuplicateItem = errors.New("item already exists")

	// ErrInvalidCredentials is returned when username and password do not match
	ErrInvalidCredentials = errors.New("username and password do not match")

	// ErrInvalidToken is returned when a session token cannot be verified
	ErrInvalidToken = errors.New("invalid session token")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrItemAlreadyOwned):
		return CodeItemAlreadyOwned
	case errors.Is(err, ErrItemNotOwned):
		return CodeItemNotOwned
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrItemNotFound):
		return CodeItemNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// MarketError represents a failed purchase or sale attempt
type MarketError struct {
	Operation string // "purchase" or "sale"
	UserID    uint64
	ItemName  string
	Price     string
	Balance   string
	Err       error
}

// Error implements the error interface for MarketError
func (e *MarketError) Error() string {
	return fmt.Sprintf("%s of %q failed for user %d (price: %s, balance: %s): %v",
		e.Operation, e.ItemName, e.UserID, e.Price, e.Balance, e.Err)
}

// Unwrap returns the underlying error
func (e *MarketError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *MarketError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "market_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"item_name":  e.ItemName,
		"price":      e.Price,
		"balance":    e.Balance,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMarketError creates a detailed market error
func NewMarketError(operation string, userID uint64, itemName, price, balance string, err error) error {
	return &MarketError{
		Operation: operation,
		UserID:    userID,
		ItemName:  itemName,
		Price:     price,
		Balance:   balance,
		Err:       err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Price       string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Price, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"price":           e.Price,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, price, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Price:       price,
		CurrBalance: currentBalance,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsItemNotFoundError checks if the error is an item not found error
func IsItemNotFoundError(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrItemNotFound)
}

// IsEligibilityError checks if the error is a business-rule rejection of a
// purchase or sale. These are recovered locally and never surface as
// protocol-level failures.
func IsEligibilityError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrItemAlreadyOwned) ||
		errors.Is(err, ErrItemNotOwned)
}

// IsDuplicateUserError checks if the error is a duplicate user error
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsInvalidCredentialsError checks if the error is an invalid credentials error
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
