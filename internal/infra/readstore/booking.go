package readstore

import (
	"context"
	"fmt"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingListColumns = `
	b.id,
	COALESCE(u.name, ''),
	COALESCE(u.first_name, ''),
	COALESCE(u.last_name, ''),
	COALESCE(u.email, ''),
	b.hotel_name,
	b.hotel_location,
	b.room_type,
	b.check_in,
	b.check_out,
	b.status,
	b.payment_status,
	b.total_cents,
	b.created_at`

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// FindAll pushes status and date-range narrowing into SQL; free-text
// filtering and sorting happen in the query layer on the fetched set.
func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.ListFilter) ([]*queries.BookingView, error) {
	sql := `SELECT ` + bookingListColumns + `
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id`

	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("b.check_in >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("b.check_in <= $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY b.created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	return scanBookingViews(rows)
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	sql := `SELECT ` + bookingListColumns + `
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by user", err)
	}
	defer rows.Close()

	return scanBookingViews(rows)
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingDetailView, error) {
	sql := `SELECT ` + bookingListColumns + `,
		b.room_id,
		b.adults,
		b.children,
		b.nights,
		b.room_total_cents,
		b.extras_total_cents,
		b.subtotal_cents,
		b.tax_cents,
		b.updated_at
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`

	var view queries.BookingDetailView
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&view.ID,
		&view.UserName,
		&view.UserFirstName,
		&view.UserLastName,
		&view.UserEmail,
		&view.HotelName,
		&view.HotelLocation,
		&view.RoomType,
		&view.CheckIn,
		&view.CheckOut,
		&view.Status,
		&view.PaymentStatus,
		&view.TotalCents,
		&view.CreatedAt,
		&view.RoomID,
		&view.Adults,
		&view.Children,
		&view.Nights,
		&view.RoomTotalCents,
		&view.ExtrasTotalCents,
		&view.SubtotalCents,
		&view.TaxCents,
		&view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	extras, err := r.findBookedExtras(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Extras = extras

	return &view, nil
}

func (r *BookingReadStore) findBookedExtras(ctx context.Context, bookingID uuid.UUID) ([]queries.BookedExtraView, error) {
	sql := `SELECT extra_id, name, price_cents, price_type, cost_cents
		FROM booking_extras
		WHERE booking_id = $1
		ORDER BY name`

	rows, err := r.db.Query(ctx, sql, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked extras", err)
	}
	defer rows.Close()

	extras := []queries.BookedExtraView{}
	for rows.Next() {
		var e queries.BookedExtraView
		if err := rows.Scan(&e.ExtraID, &e.Name, &e.PriceCents, &e.PriceType, &e.CostCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked extra", err)
		}
		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked extras", err)
	}

	return extras, nil
}

func scanBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := []*queries.BookingView{}
	for rows.Next() {
		var v queries.BookingView
		err := rows.Scan(
			&v.ID,
			&v.UserName,
			&v.UserFirstName,
			&v.UserLastName,
			&v.UserEmail,
			&v.HotelName,
			&v.HotelLocation,
			&v.RoomType,
			&v.CheckIn,
			&v.CheckOut,
			&v.Status,
			&v.PaymentStatus,
			&v.TotalCents,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}
