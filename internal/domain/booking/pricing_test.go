//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/extra"
	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoom(t *testing.T, rateCents int64, capacity int) *room.Room {
	t.Helper()
	r, err := room.NewRoom(uuid.New(), "Deluxe King", "deluxe", "Grand Plaza", "Berlin", rateCents, capacity)
	require.NoError(t, err)
	return r
}

func mustExtra(t *testing.T, name string, priceCents int64, pt extra.PriceType) *extra.Extra {
	t.Helper()
	e, err := extra.NewExtra(uuid.New(), name, priceCents, pt)
	require.NoError(t, err)
	return e
}

func stayOf(t *testing.T, checkIn, checkOut string) booking.StayPeriod {
	t.Helper()
	in, err := time.Parse("2006-01-02", checkIn)
	require.NoError(t, err)
	out, err := time.Parse("2006-01-02", checkOut)
	require.NoError(t, err)
	return booking.NewStayPeriod(in, out)
}

func TestQuote(t *testing.T) {
	t.Run("three night stay with extras", func(t *testing.T) {
		r := mustRoom(t, 12000, 4)
		guests, err := booking.NewGuestCount(2, 0)
		require.NoError(t, err)

		extras := []*extra.Extra{
			mustExtra(t, "Breakfast", 1000, extra.PerDay),
			mustExtra(t, "Airport Transfer", 5000, extra.PerStay),
		}

		p := booking.Quote(r, stayOf(t, "2026-09-01", "2026-09-04"), guests, extras)

		assert.Equal(t, 3, p.Nights)
		assert.Equal(t, int64(36000), p.RoomTotal.Cents())
		assert.Equal(t, int64(8000), p.ExtrasTotal.Cents())
		assert.Equal(t, int64(44000), p.Subtotal.Cents())
		assert.Equal(t, int64(5280), p.Tax.Cents())
		assert.Equal(t, int64(49280), p.Total.Cents())
	})

	t.Run("per person per day extra scales with guests and nights", func(t *testing.T) {
		r := mustRoom(t, 10000, 5)
		guests, err := booking.NewGuestCount(2, 1)
		require.NoError(t, err)

		extras := []*extra.Extra{
			mustExtra(t, "Half Board", 2000, extra.PerPersonPerDay),
		}

		p := booking.Quote(r, stayOf(t, "2026-09-01", "2026-09-03"), guests, extras)

		// 2000 * 3 guests * 2 nights
		assert.Equal(t, int64(12000), p.ExtrasTotal.Cents())
		assert.Equal(t, int64(32000), p.Subtotal.Cents())
	})

	t.Run("no extras", func(t *testing.T) {
		r := mustRoom(t, 9900, 2)
		guests, err := booking.NewGuestCount(1, 0)
		require.NoError(t, err)

		p := booking.Quote(r, stayOf(t, "2026-09-01", "2026-09-02"), guests, nil)

		assert.Equal(t, 1, p.Nights)
		assert.Equal(t, int64(9900), p.RoomTotal.Cents())
		assert.Equal(t, int64(0), p.ExtrasTotal.Cents())
		assert.Equal(t, int64(1188), p.Tax.Cents())
		assert.Equal(t, int64(11088), p.Total.Cents())
	})

	t.Run("tax rounds half up on the cent", func(t *testing.T) {
		tests := []struct {
			name          string
			subtotalCents int64
			wantTaxCents  int64
		}{
			{name: "exact multiple", subtotalCents: 100, wantTaxCents: 12},
			{name: "fraction below half rounds down", subtotalCents: 103, wantTaxCents: 12},
			{name: "fraction just below half rounds down", subtotalCents: 104, wantTaxCents: 12},
			{name: "fraction above half rounds up", subtotalCents: 105, wantTaxCents: 13},
			{name: "large subtotal", subtotalCents: 9999999, wantTaxCents: 1200000},
			{name: "zero subtotal", subtotalCents: 0, wantTaxCents: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := mustRoom(t, tt.subtotalCents, 2)
				guests, err := booking.NewGuestCount(1, 0)
				require.NoError(t, err)

				p := booking.Quote(r, stayOf(t, "2026-09-01", "2026-09-02"), guests, nil)
				assert.Equal(t, tt.wantTaxCents, p.Tax.Cents())
				assert.Equal(t, tt.subtotalCents+tt.wantTaxCents, p.Total.Cents())
			})
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r := mustRoom(t, 15500, 3)
		guests, err := booking.NewGuestCount(2, 1)
		require.NoError(t, err)
		extras := []*extra.Extra{
			mustExtra(t, "Spa Access", 2500, extra.PerDay),
		}
		stay := stayOf(t, "2026-10-10", "2026-10-15")

		first := booking.Quote(r, stay, guests, extras)
		second := booking.Quote(r, stay, guests, extras)
		assert.Equal(t, first, second)
	})
}
