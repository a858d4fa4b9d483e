package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"Invalid user ID", ErrInvalidUserID, CodeInvalidUserID},
		{"Item already owned", ErrItemAlreadyOwned, CodeItemAlreadyOwned},
		{"Item not owned", ErrItemNotOwned, CodeItemNotOwned},
		{"Invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"Invalid token", ErrInvalidToken, CodeInvalidToken},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Item not found", ErrItemNotFound, CodeItemNotFound},
		{"Duplicate user", ErrDuplicateUser, CodeDuplicateUser},
		{"Constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"Unknown error", errors.New("something unexpected"), CodeInternalServer},
		{"Wrapped error keeps its code", fmt.Errorf("context: %w", ErrItemNotFound), CodeItemNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestMarketError(t *testing.T) {
	t.Run("Error message contains operation details", func(t *testing.T) {
		err := NewMarketError("purchase", 42, "Phone", "500.00", "100.00", ErrInsufficientBalance)

		assert.Contains(t, err.Error(), "purchase")
		assert.Contains(t, err.Error(), "Phone")
		assert.Contains(t, err.Error(), "42")
		assert.Contains(t, err.Error(), "500.00")
		assert.Contains(t, err.Error(), "100.00")
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		err := NewMarketError("sale", 42, "Keyboard", "150.00", "0.00", ErrItemNotOwned)

		assert.ErrorIs(t, err, ErrItemNotOwned)

		var marketErr *MarketError
		assert.True(t, errors.As(err, &marketErr))
		assert.Equal(t, "sale", marketErr.Operation)
	})

	t.Run("LogFields carries structured context", func(t *testing.T) {
		err := &MarketError{
			Operation: "purchase",
			UserID:    42,
			ItemName:  "Phone",
			Price:     "500.00",
			Balance:   "100.00",
			Err:       ErrInsufficientBalance,
		}

		fields := err.LogFields()
		assert.Equal(t, "market_error", fields["error_type"])
		assert.Equal(t, "purchase", fields["operation"])
		assert.Equal(t, uint64(42), fields["user_id"])
		assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, "900.00", "100.00")

	t.Run("Matches the sentinel via errors.Is", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("Error message contains amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "900.00")
		assert.Contains(t, err.Error(), "100.00")
	})

	t.Run("Extractable via errors.As", func(t *testing.T) {
		var balanceErr *InsufficientBalanceError
		assert.True(t, errors.As(err, &balanceErr))
		assert.Equal(t, uint64(7), balanceErr.UserID)
	})
}

func TestErrorClassificationHelpers(t *testing.T) {
	t.Run("IsEligibilityError", func(t *testing.T) {
		assert.True(t, IsEligibilityError(ErrInsufficientBalance))
		assert.True(t, IsEligibilityError(ErrItemAlreadyOwned))
		assert.True(t, IsEligibilityError(ErrItemNotOwned))
		assert.True(t, IsEligibilityError(NewInsufficientBalanceError(1, "10.00", "5.00")))
		assert.False(t, IsEligibilityError(ErrItemNotFound))
		assert.False(t, IsEligibilityError(ErrDatabaseConnection))
	})

	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrItemNotFound))
		assert.False(t, IsNotFoundError(ErrDuplicateUser))
	})

	t.Run("IsDuplicateUserError", func(t *testing.T) {
		assert.True(t, IsDuplicateUserError(ErrDuplicateUser))
		assert.True(t, IsDuplicateUserError(fmt.Errorf("register: %w", ErrDuplicateUser)))
		assert.False(t, IsDuplicateUserError(ErrUserNotFound))
	})

	t.Run("IsInvalidCredentialsError", func(t *testing.T) {
		assert.True(t, IsInvalidCredentialsError(ErrInvalidCredentials))
		assert.False(t, IsInvalidCredentialsError(ErrInvalidToken))
	})
}
