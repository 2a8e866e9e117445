//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayPeriodNights(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "single night", checkIn: base, checkOut: base.AddDate(0, 0, 1), want: 1},
		{name: "week long stay", checkIn: base, checkOut: base.AddDate(0, 0, 7), want: 7},
		{name: "partial day rounds up", checkIn: base, checkOut: base.Add(36 * time.Hour), want: 2},
		{name: "same day clamps to one", checkIn: base, checkOut: base, want: 1},
		{name: "inverted range clamps to one", checkIn: base.AddDate(0, 0, 3), checkOut: base, want: 1},
		{name: "zero check-in clamps to one", checkOut: base, want: 1},
		{name: "zero check-out clamps to one", checkIn: base, want: 1},
		{name: "both zero clamps to one", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := booking.NewStayPeriod(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, stay.Nights())
		})
	}
}

func TestStayPeriodValidate(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid range", func(t *testing.T) {
		stay := booking.NewStayPeriod(base, base.AddDate(0, 0, 2))
		assert.NoError(t, stay.Validate())
	})

	t.Run("same day is rejected", func(t *testing.T) {
		stay := booking.NewStayPeriod(base, base)
		assert.ErrorIs(t, stay.Validate(), booking.ErrInvalidStay)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		stay := booking.NewStayPeriod(base.AddDate(0, 0, 2), base)
		assert.ErrorIs(t, stay.Validate(), booking.ErrInvalidStay)
	})

	t.Run("missing dates are rejected", func(t *testing.T) {
		stay := booking.NewStayPeriod(time.Time{}, base)
		assert.ErrorIs(t, stay.Validate(), booking.ErrInvalidStay)
	})
}

func TestGuestCount(t *testing.T) {
	t.Run("adults and children", func(t *testing.T) {
		guests, err := booking.NewGuestCount(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, guests.Adults())
		assert.Equal(t, 3, guests.Children())
		assert.Equal(t, 5, guests.Total())
	})

	t.Run("children default to none", func(t *testing.T) {
		guests, err := booking.NewGuestCount(1, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, guests.Total())
	})

	t.Run("requires at least one adult", func(t *testing.T) {
		_, err := booking.NewGuestCount(0, 2)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("rejects negative children", func(t *testing.T) {
		_, err := booking.NewGuestCount(2, -1)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(12345)
	assert.Equal(t, int64(12345), m.Cents())
	assert.Equal(t, int64(12400), m.Add(booking.NewMoney(55)).Cents())
	assert.InDelta(t, 123.45, m.Dollars(), 0.0001)
}
