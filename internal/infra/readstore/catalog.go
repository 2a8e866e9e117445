package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) FindAllRooms(ctx context.Context) ([]*queries.RoomView, error) {
	sql := `SELECT id, name, room_type, hotel_name, hotel_location, nightly_rate_cents, capacity
		FROM rooms
		ORDER BY hotel_name, name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	views := []*queries.RoomView{}
	for rows.Next() {
		var v queries.RoomView
		err := rows.Scan(&v.ID, &v.Name, &v.RoomType, &v.HotelName, &v.HotelLocation, &v.NightlyRateCents, &v.Capacity)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return views, nil
}

func (r *CatalogReadStore) FindAllExtras(ctx context.Context) ([]*queries.ExtraView, error) {
	sql := `SELECT id, name, price_cents, price_type
		FROM extras
		ORDER BY name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query extras", err)
	}
	defer rows.Close()

	views := []*queries.ExtraView{}
	for rows.Next() {
		var v queries.ExtraView
		if err := rows.Scan(&v.ID, &v.Name, &v.PriceCents, &v.PriceType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra rows", err)
	}

	return views, nil
}
