package queries

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/infra"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookedExtraView is the per-booking copy of a charged extra.
type BookedExtraView struct {
	ExtraID    uuid.UUID `json:"extra_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	PriceType  string    `json:"price_type"`
	CostCents  int64     `json:"cost_cents"`
}

type BookingDetailView struct {
	BookingView
	RoomID           uuid.UUID         `json:"room_id"`
	Adults           int               `json:"adults"`
	Children         int               `json:"children"`
	Nights           int               `json:"nights"`
	RoomTotalCents   int64             `json:"room_total_cents"`
	ExtrasTotalCents int64             `json:"extras_total_cents"`
	SubtotalCents    int64             `json:"subtotal_cents"`
	TaxCents         int64             `json:"tax_cents"`
	Extras           []BookedExtraView `json:"extras"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ListFilter narrows the fetch itself; the free-text query and sort run on
// the fetched set afterwards, so display order among matches always follows
// the sorted order.
type ListFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
}

type BookingViewRepo interface {
	FindAll(ctx context.Context, filter ListFilter) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingDetailView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context, filter ListFilter, sortSpec SortSpec, query string) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingDetailView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// List runs the full pipeline: fetch, normalize every record, sort, then
// apply the free-text filter.
func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter, sortSpec SortSpec, query string) ([]*BookingView, error) {
	views, err := q.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		Normalize(v)
	}
	return Filter(Sort(views, sortSpec), query), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		Normalize(v)
	}
	return Sort(views, DefaultSort()), nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	Normalize(&view.BookingView)
	return view, nil
}
