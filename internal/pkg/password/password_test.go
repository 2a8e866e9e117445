//go:build unit

package password_test

import (
	"testing"

	"hotel-booking-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hashed, err := password.Hash("password123")
		require.NoError(t, err)
		require.NotEqual(t, "password123", hashed)

		assert.NoError(t, password.Compare(hashed, "password123"))
	})

	t.Run("wrong password mismatches", func(t *testing.T) {
		hashed, err := password.Hash("password123")
		require.NoError(t, err)

		assert.ErrorIs(t, password.Compare(hashed, "wrong-password"), password.ErrMismatch)
	})

	t.Run("empty inputs are rejected", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)

		assert.ErrorIs(t, password.Compare("", "password123"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.Compare("some-hash", ""), password.ErrInvalidPassword)
	})
}
