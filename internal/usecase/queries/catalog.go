package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	RoomType         string    `json:"room_type"`
	HotelName        string    `json:"hotel_name"`
	HotelLocation    string    `json:"hotel_location"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Capacity         int       `json:"capacity"`
}

type ExtraView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	PriceType  string    `json:"price_type"`
}

type CatalogViewRepo interface {
	FindAllRooms(ctx context.Context) ([]*RoomView, error)
	FindAllExtras(ctx context.Context) ([]*ExtraView, error)
}

type CatalogQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	ListExtras(ctx context.Context) ([]*ExtraView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	return q.repo.FindAllRooms(ctx)
}

func (q *catalogQueriesImpl) ListExtras(ctx context.Context) ([]*ExtraView, error) {
	return q.repo.FindAllExtras(ctx)
}
