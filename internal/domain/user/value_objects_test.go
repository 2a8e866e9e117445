//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "jane@example.com", want: "jane@example.com"},
		{name: "trims whitespace", input: "  jane@example.com  ", want: "jane@example.com"},
		{name: "subdomain", input: "jane@mail.example.co.uk", want: "jane@mail.example.co.uk"},
		{name: "plus addressing", input: "jane+test@example.com", want: "jane+test@example.com"},
		{name: "missing at sign", input: "jane.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "jane@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "jane@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("accepts eight characters", func(t *testing.T) {
		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("rejects seven characters", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"guest", "staff", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := user.NewCredentials("jane@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", c.Email().Value())
		assert.Equal(t, "password123", c.Password().Value())
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := user.NewCredentials("jane@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
