package repository

import (
	"context"

	"hotel-booking-api/internal/domain/extra"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository loads rooms and extras as domain entities for the
// booking command path. List views come from the readstore instead.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	sql := `SELECT id, name, room_type, hotel_name, hotel_location, nightly_rate_cents, capacity
		FROM rooms
		WHERE id = $1`

	var (
		roomID                                   uuid.UUID
		name, roomType, hotelName, hotelLocation string
		nightlyRateCents                         int64
		capacity                                 int
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(&roomID, &name, &roomType, &hotelName, &hotelLocation, &nightlyRateCents, &capacity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	roomEntity, err := room.NewRoom(roomID, name, roomType, hotelName, hotelLocation, nightlyRateCents, capacity)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room failed domain validation", err)
	}
	return roomEntity, nil
}

func (r *CatalogRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*extra.Extra, error) {
	sql := `SELECT id, name, price_cents, price_type
		FROM extras
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query extras by IDs", err)
	}
	defer rows.Close()

	extras := make([]*extra.Extra, 0, len(ids))
	for rows.Next() {
		var (
			extraID    uuid.UUID
			name       string
			priceCents int64
			priceType  string
		)
		if err := rows.Scan(&extraID, &name, &priceCents, &priceType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra row", err)
		}

		extraEntity, err := extra.NewExtra(extraID, name, priceCents, extra.PriceType(priceType))
		if err != nil {
			return nil, infra.WrapRepoErr("stored extra failed domain validation", err)
		}
		extras = append(extras, extraEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra rows", err)
	}

	if len(extras) != len(ids) {
		return nil, infra.WrapRepoErr("one or more extras not found", nil, infra.KindNotFound)
	}

	return extras, nil
}
