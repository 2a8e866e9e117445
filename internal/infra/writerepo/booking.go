package writerepo

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingWriteRepo struct {
	db *pgxpool.Pool
}

func NewBookingWriteRepo(db *pgxpool.Pool) *BookingWriteRepo {
	return &BookingWriteRepo{db: db}
}

// Create inserts the booking and its charged extras inside the caller's
// transaction so a partial booking can never be observed.
func (r *BookingWriteRepo) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	sql := `INSERT INTO bookings (
			id, user_id, room_id, room_type, hotel_name, hotel_location,
			check_in, check_out, adults, children, nights,
			room_total_cents, extras_total_cents, subtotal_cents, tax_cents, total_cents,
			status, payment_status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19, $20
		)`

	price := b.Price()
	_, err := tx.Exec(ctx, sql,
		b.ID(), b.UserID(), b.RoomID(), b.RoomType(), b.HotelName(), b.HotelLocation(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Guests().Adults(), b.Guests().Children(), price.Nights,
		price.RoomTotal.Cents(), price.ExtrasTotal.Cents(), price.Subtotal.Cents(), price.Tax.Cents(), price.Total.Cents(),
		b.Status().String(), b.PaymentStatus().String(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	for _, e := range b.Extras() {
		_, err := tx.Exec(ctx,
			`INSERT INTO booking_extras (booking_id, extra_id, name, price_cents, price_type, cost_cents)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			b.ID(), e.ExtraID, e.Name, e.PriceCents, e.PriceType.String(), e.CostCents,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking extra", err)
		}
	}

	return nil
}

func (r *BookingWriteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus, updatedAt time.Time) error {
	sql := `UPDATE bookings
		SET status = $2, payment_status = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id, status.String(), paymentStatus.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingWriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
