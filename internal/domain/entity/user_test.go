package entity

import (
	"testing"
	"time"

	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coremocks "github.com/Minyanaing/item-market/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed", user.PasswordHash())
		assert.Equal(t, int64(100000), user.Balance())
		assert.Equal(t, "1000.00", user.FormattedBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "alice", "alice@example.com", "hashed", "1000.00", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Empty username should return error", func(t *testing.T) {
		user, err := NewUser(1, "", "alice@example.com", "hashed", "1000.00", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUsername, err)
		assert.Nil(t, user)
	})

	t.Run("Invalid balance format", func(t *testing.T) {
		testCases := []string{
			"invalid",
			"",
			"100.123",
			"$100.00",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser(1, "alice", "alice@example.com", "hashed", tc, mockTime)
				assert.Error(t, err)
				assert.Nil(t, user)
			})
		}
	})
}

func TestNewPendingUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Pending user has zero ID until persisted", func(t *testing.T) {
		user, err := NewPendingUser("bob", "bob@example.com", "hashed", "1000.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, int64(100000), user.Balance())
	})

	t.Run("Empty username should return error", func(t *testing.T) {
		user, err := NewPendingUser("", "bob@example.com", "hashed", "1000.00", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUsername, err)
		assert.Nil(t, user)
	})
}

func TestUserSetBalance(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(initialTime).Once()

	user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "100.00", mockTime)

	mockTime.On("Now").Return(updateTime).Once()
	user.SetBalance(20000, mockTime)

	assert.Equal(t, int64(20000), user.Balance())
	assert.Equal(t, "200.00", user.FormattedBalance())
	assert.Equal(t, initialTime, user.CreatedAt)
	assert.Equal(t, updateTime, user.UpdatedAt)
}

func TestUserCanPurchase(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Available item within balance", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)
		item, _ := NewItem(1, "Phone", "893212299897", "500.00", mockTime)

		assert.True(t, user.CanPurchase(item))
	})

	t.Run("Balance exactly equal to price is eligible", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "500.00", mockTime)
		item, _ := NewItem(1, "Phone", "893212299897", "500.00", mockTime)

		assert.True(t, user.CanPurchase(item))
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		user, _ := NewUser(1, "bob", "bob@example.com", "hashed", "100.00", mockTime)
		item, _ := NewItem(1, "Laptop", "123985473165", "900.00", mockTime)

		assert.False(t, user.CanPurchase(item))
	})

	t.Run("Item owned by someone else", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)
		item, _ := NewItem(1, "Phone", "893212299897", "500.00", mockTime)
		item.AssignOwner(2, mockTime)

		assert.False(t, user.CanPurchase(item))
	})

	t.Run("Item owned by the same user", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)
		item, _ := NewItem(1, "Phone", "893212299897", "500.00", mockTime)
		item.AssignOwner(1, mockTime)

		assert.False(t, user.CanPurchase(item))
	})
}

func TestUserCanSell(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)

	t.Run("Owned item can be sold", func(t *testing.T) {
		item, _ := NewItem(1, "Keyboard", "231985128446", "150.00", mockTime)
		item.AssignOwner(1, mockTime)

		assert.True(t, user.CanSell(item))
	})

	t.Run("Unowned item cannot be sold", func(t *testing.T) {
		item, _ := NewItem(1, "Keyboard", "231985128446", "150.00", mockTime)

		assert.False(t, user.CanSell(item))
	})

	t.Run("Item owned by someone else cannot be sold", func(t *testing.T) {
		item, _ := NewItem(1, "Keyboard", "231985128446", "150.00", mockTime)
		item.AssignOwner(2, mockTime)

		assert.False(t, user.CanSell(item))
	})
}

func TestUserApplyPurchase(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Deducts price from balance", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "1000.00", mockTime)

		err := user.ApplyPurchase(50000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "500.00", user.FormattedBalance())
	})

	t.Run("Balance can reach exactly zero", func(t *testing.T) {
		user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "500.00", mockTime)

		err := user.ApplyPurchase(50000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.00", user.FormattedBalance())
	})

	t.Run("Rejects purchase beyond balance", func(t *testing.T) {
		user, _ := NewUser(1, "bob", "bob@example.com", "hashed", "100.00", mockTime)

		err := user.ApplyPurchase(90000, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "100.00", user.FormattedBalance())
	})
}

func TestUserApplySale(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	user, _ := NewUser(1, "alice", "alice@example.com", "hashed", "0.00", mockTime)

	user.ApplySale(15000, mockTime)

	assert.Equal(t, "150.00", user.FormattedBalance())
}
