package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coremocks "github.com/Minyanaing/item-market/mocks/port/core"
)

const testSecret = "test-signing-secret"

func TestJWTIssuer(t *testing.T) {
	t.Run("issued token verifies and carries the identity", func(t *testing.T) {
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(time.Now())

		issuer := NewJWTIssuer(testSecret, time.Hour, mockTime)

		token, err := issuer.Issue(42, "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(time.Now().Add(-2 * time.Hour))

		issuer := NewJWTIssuer(testSecret, time.Hour, mockTime)

		token, err := issuer.Issue(42, "alice")
		require.NoError(t, err)

		claims, err := issuer.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		mockTime := new(coremocks.MockTimeProvider)
		mockTime.On("Now").Return(time.Now())

		issuer := NewJWTIssuer(testSecret, time.Hour, mockTime)
		other := NewJWTIssuer("another-secret", time.Hour, mockTime)

		token, err := other.Issue(42, "alice")
		require.NoError(t, err)

		claims, err := issuer.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		mockTime := new(coremocks.MockTimeProvider)
		issuer := NewJWTIssuer(testSecret, time.Hour, mockTime)

		claims, err := issuer.Verify("not.a.token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		mockTime := new(coremocks.MockTimeProvider)
		issuer := NewJWTIssuer(testSecret, time.Hour, mockTime)

		claims, err := issuer.Verify("")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
