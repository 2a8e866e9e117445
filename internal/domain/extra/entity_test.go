//go:build unit

package extra_test

import (
	"testing"

	"hotel-booking-api/internal/domain/extra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtra(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		e, err := extra.NewExtra(uuid.New(), "  Breakfast  ", 1000, extra.PerDay)
		require.NoError(t, err)
		assert.Equal(t, "Breakfast", e.Name())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := extra.NewExtra(uuid.New(), "   ", 1000, extra.PerDay)
		assert.ErrorIs(t, err, extra.ErrEmptyExtraName)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		_, err := extra.NewExtra(uuid.New(), "Breakfast", -1, extra.PerDay)
		assert.ErrorIs(t, err, extra.ErrNegativePrice)
	})
}

func TestExtraCost(t *testing.T) {
	tests := []struct {
		name       string
		priceCents int64
		priceType  extra.PriceType
		nights     int
		guests     int
		want       int64
	}{
		{name: "per day multiplies by nights", priceCents: 1000, priceType: extra.PerDay, nights: 3, guests: 2, want: 3000},
		{name: "per person per day multiplies by guests and nights", priceCents: 1500, priceType: extra.PerPersonPerDay, nights: 2, guests: 3, want: 9000},
		{name: "per stay charges once", priceCents: 5000, priceType: extra.PerStay, nights: 7, guests: 4, want: 5000},
		{name: "unknown type charges the flat price once", priceCents: 2500, priceType: extra.PriceType("weekly"), nights: 7, guests: 4, want: 2500},
		{name: "single night per day", priceCents: 800, priceType: extra.PerDay, nights: 1, guests: 1, want: 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := extra.NewExtra(uuid.New(), "Extra", tt.priceCents, tt.priceType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Cost(tt.nights, tt.guests))
		})
	}
}
