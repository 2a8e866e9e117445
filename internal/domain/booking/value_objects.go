package booking

import (
	"errors"
	"time"
)

// StayPeriod is the check-in/check-out pair defining the night count.
// Construction is forgiving: an inverted or empty range is kept as-is and
// Nights() clamps to 1, so the calculator never fails on bad dates. Callers
// that need to block submission use Validate().
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

var ErrInvalidStay = errors.New("check-out must be after check-in")

func NewStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// Nights returns the billable night count: the calendar-day difference
// rounded up, floored at 1.
func (s StayPeriod) Nights() int {
	if s.checkIn.IsZero() || s.checkOut.IsZero() {
		return 1
	}
	diff := s.checkOut.Sub(s.checkIn)
	if diff <= 0 {
		return 1
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

func (s StayPeriod) Validate() error {
	if s.checkIn.IsZero() || s.checkOut.IsZero() || !s.checkOut.After(s.checkIn) {
		return ErrInvalidStay
	}
	return nil
}

type GuestCount struct {
	adults   int
	children int
}

var ErrInvalidGuestCount = errors.New("at least one adult is required")

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 1 || children < 0 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int {
	return g.adults
}

func (g GuestCount) Children() int {
	return g.children
}

func (g GuestCount) Total() int {
	return g.adults + g.children
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}
