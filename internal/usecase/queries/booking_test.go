//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingViewRepo struct {
	views   []*queries.BookingView
	detail  *queries.BookingDetailView
	err     error
	gotUser uuid.UUID
}

func (s *stubBookingViewRepo) FindAll(_ context.Context, _ queries.ListFilter) ([]*queries.BookingView, error) {
	return s.views, s.err
}

func (s *stubBookingViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingDetailView, error) {
	return s.detail, s.err
}

func (s *stubBookingViewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	s.gotUser = userID
	return s.views, s.err
}

func TestBookingQueriesList(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("normalizes, sorts, then filters", func(t *testing.T) {
		repo := &stubBookingViewRepo{
			views: []*queries.BookingView{
				{ID: uuid.New(), UserFirstName: "Jane", UserLastName: "Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin", TotalCents: 300, CreatedAt: base},
				{ID: uuid.New(), UserName: "John Smith", HotelName: "Grand Plaza", HotelLocation: "Berlin", TotalCents: 100, CreatedAt: base.Add(time.Hour)},
				{ID: uuid.New(), UserName: "Maria Garcia", HotelName: "Hotel Excelsior", HotelLocation: "Vienna", TotalCents: 200, CreatedAt: base.Add(2 * time.Hour)},
			},
		}
		q := queries.NewBookingQueries(repo)

		got, err := q.List(context.Background(), queries.ListFilter{}, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc}, "plaza")
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "John Smith", got[0].UserName)
		assert.Equal(t, "Jane Doe", got[1].UserName)
	})

	t.Run("records with missing data still render", func(t *testing.T) {
		repo := &stubBookingViewRepo{
			views: []*queries.BookingView{
				{ID: uuid.New(), CreatedAt: base},
			},
		}
		q := queries.NewBookingQueries(repo)

		got, err := q.List(context.Background(), queries.ListFilter{}, queries.DefaultSort(), "")
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, queries.UnknownUserName, got[0].UserName)
		assert.Equal(t, queries.MissingFieldText, got[0].HotelName)
		assert.Equal(t, queries.MissingFieldText, got[0].HotelLocation)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &stubBookingViewRepo{err: errors.New("connection refused")}
		q := queries.NewBookingQueries(repo)

		_, err := q.List(context.Background(), queries.ListFilter{}, queries.DefaultSort(), "")
		assert.Error(t, err)
	})
}

func TestBookingQueriesListByUser(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	repo := &stubBookingViewRepo{
		views: []*queries.BookingView{
			{ID: uuid.New(), UserName: "Jane Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin", CreatedAt: base},
			{ID: uuid.New(), UserName: "Jane Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin", CreatedAt: base.Add(time.Hour)},
		},
	}
	q := queries.NewBookingQueries(repo)

	got, err := q.ListByUser(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, repo.gotUser)
	require.Len(t, got, 2)
	// Default ordering is newest first
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestBookingQueriesGetByID(t *testing.T) {
	repo := &stubBookingViewRepo{
		detail: &queries.BookingDetailView{
			BookingView: queries.BookingView{ID: uuid.New(), UserFirstName: "Jane", UserLastName: "Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
			Nights:      3,
		},
	}
	q := queries.NewBookingQueries(repo)

	got, err := q.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.UserName)
	assert.Equal(t, 3, got.Nights)
}
