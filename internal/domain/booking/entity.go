package booking

import (
	"errors"
	"time"

	"hotel-booking-api/internal/domain/extra"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrRoomRequired     = errors.New("a room must be selected")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrQuoteMismatch    = errors.New("quoted total does not match computed total")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// BookedExtra is the per-booking copy of a catalog extra. The catalog row may
// change later; the booking keeps the price it was charged.
type BookedExtra struct {
	ExtraID    uuid.UUID
	Name       string
	PriceCents int64
	PriceType  extra.PriceType
	CostCents  int64
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	roomID        uuid.UUID
	roomType      string
	hotelName     string
	hotelLocation string
	stay          StayPeriod
	guests        GuestCount
	extras        []BookedExtra
	price         PriceBreakdown
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateBooking validates the submission and recomputes the price breakdown
// with Quote. When the caller supplies the total it displayed, the two must
// agree exactly; cached client-side state is never trusted.
func (f *Factory) CreateBooking(
	roomEntity *room.Room,
	userID uuid.UUID,
	stay StayPeriod,
	guests GuestCount,
	extras []*extra.Extra,
	quotedTotalCents *int64,
) (*Booking, error) {
	if roomEntity == nil {
		return nil, ErrRoomRequired
	}
	if err := stay.Validate(); err != nil {
		return nil, err
	}
	if !roomEntity.CanAccommodate(guests.Total()) {
		return nil, ErrCapacityExceeded
	}

	price := Quote(roomEntity, stay, guests, extras)
	if quotedTotalCents != nil && *quotedTotalCents != price.Total.Cents() {
		return nil, ErrQuoteMismatch
	}

	booked := make([]BookedExtra, len(extras))
	for i, e := range extras {
		booked[i] = BookedExtra{
			ExtraID:    e.ID(),
			Name:       e.Name(),
			PriceCents: e.PriceCents(),
			PriceType:  e.PriceType(),
			CostCents:  e.Cost(price.Nights, guests.Total()),
		}
	}

	now := f.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		roomID:        roomEntity.ID(),
		roomType:      roomEntity.RoomType(),
		hotelName:     roomEntity.HotelName(),
		hotelLocation: roomEntity.HotelLocation(),
		stay:          stay,
		guests:        guests,
		extras:        booked,
		price:         price,
		status:        StatusPending,
		paymentStatus: PaymentStatusFor(StatusPending),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ChangeStatus moves the booking to a new status and derives the payment
// status that must accompany it.
func (b *Booking) ChangeStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	b.status = s
	b.paymentStatus = PaymentStatusFor(s)
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) RoomID() uuid.UUID            { return b.roomID }
func (b *Booking) RoomType() string             { return b.roomType }
func (b *Booking) HotelName() string            { return b.hotelName }
func (b *Booking) HotelLocation() string        { return b.hotelLocation }
func (b *Booking) Stay() StayPeriod             { return b.stay }
func (b *Booking) Guests() GuestCount           { return b.guests }
func (b *Booking) Extras() []BookedExtra        { return b.extras }
func (b *Booking) Price() PriceBreakdown        { return b.price }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
