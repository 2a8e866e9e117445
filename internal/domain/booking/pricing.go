package booking

import (
	"hotel-booking-api/internal/domain/extra"
	"hotel-booking-api/internal/domain/room"
)

// TaxRatePercent is the fixed tax applied to every booking subtotal.
// Policy constant, not configurable.
const TaxRatePercent = 12

type PriceBreakdown struct {
	Nights      int
	RoomTotal   Money
	ExtrasTotal Money
	Subtotal    Money
	Tax         Money
	Total       Money
}

// Quote derives the full price breakdown for a stay. Pure and deterministic:
// identical inputs always produce an identical breakdown, and the same call
// is made once more at submission time so the charged total can never drift
// from the displayed one.
func Quote(r *room.Room, stay StayPeriod, guests GuestCount, extras []*extra.Extra) PriceBreakdown {
	nights := stay.Nights()

	roomTotal := r.NightlyRateCents() * int64(nights)

	var extrasTotal int64
	for _, e := range extras {
		extrasTotal += e.Cost(nights, guests.Total())
	}

	subtotal := roomTotal + extrasTotal
	tax := taxOn(subtotal)

	return PriceBreakdown{
		Nights:      nights,
		RoomTotal:   NewMoney(roomTotal),
		ExtrasTotal: NewMoney(extrasTotal),
		Subtotal:    NewMoney(subtotal),
		Tax:         NewMoney(tax),
		Total:       NewMoney(subtotal + tax),
	}
}

// taxOn rounds half-up on the cent.
func taxOn(subtotalCents int64) int64 {
	return (subtotalCents*TaxRatePercent + 50) / 100
}
