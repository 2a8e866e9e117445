//go:build unit

package queries_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   queries.BookingView
		want queries.BookingView
	}{
		{
			name: "complete record is untouched",
			in:   queries.BookingView{UserName: "Jane Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
			want: queries.BookingView{UserName: "Jane Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
		},
		{
			name: "name synthesized from parts",
			in:   queries.BookingView{UserFirstName: "Jane", UserLastName: "Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
			want: queries.BookingView{UserFirstName: "Jane", UserLastName: "Doe", UserName: "Jane Doe", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
		},
		{
			name: "first name only",
			in:   queries.BookingView{UserFirstName: "Jane", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
			want: queries.BookingView{UserFirstName: "Jane", UserName: "Jane", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
		},
		{
			name: "no name data falls back to placeholder",
			in:   queries.BookingView{UserName: "   ", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
			want: queries.BookingView{UserName: queries.UnknownUserName, HotelName: "Grand Plaza", HotelLocation: "Berlin"},
		},
		{
			name: "blank hotel fields render as placeholder",
			in:   queries.BookingView{UserName: "Jane Doe", HotelName: "", HotelLocation: "  "},
			want: queries.BookingView{UserName: "Jane Doe", HotelName: queries.MissingFieldText, HotelLocation: queries.MissingFieldText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			queries.Normalize(&v)
			if diff := cmp.Diff(tt.want, v); diff != "" {
				t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSortSpec(t *testing.T) {
	t.Run("defaults to created at descending", func(t *testing.T) {
		spec := queries.ParseSortSpec("", "")
		assert.Equal(t, queries.SortSpec{Field: queries.SortByCreatedAt, Direction: queries.Desc}, spec)
	})

	t.Run("unknown field falls back to default", func(t *testing.T) {
		spec := queries.ParseSortSpec("nonsense", "asc")
		assert.Equal(t, queries.SortSpec{Field: queries.SortByCreatedAt, Direction: queries.Asc}, spec)
	})

	t.Run("valid field and direction", func(t *testing.T) {
		spec := queries.ParseSortSpec("total", "asc")
		assert.Equal(t, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc}, spec)
	})

	t.Run("unknown direction stays descending", func(t *testing.T) {
		spec := queries.ParseSortSpec("customer", "sideways")
		assert.Equal(t, queries.SortSpec{Field: queries.SortByCustomer, Direction: queries.Desc}, spec)
	})
}

func TestNextSort(t *testing.T) {
	current := queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Desc}

	t.Run("same field toggles direction", func(t *testing.T) {
		next := queries.NextSort(current, queries.SortByTotal)
		assert.Equal(t, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc}, next)

		again := queries.NextSort(next, queries.SortByTotal)
		assert.Equal(t, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Desc}, again)
	})

	t.Run("new field resets to descending", func(t *testing.T) {
		asc := queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc}
		next := queries.NextSort(asc, queries.SortByCustomer)
		assert.Equal(t, queries.SortSpec{Field: queries.SortByCustomer, Direction: queries.Desc}, next)
	})
}

func TestSort(t *testing.T) {
	view := func(name string, totalCents int64, checkIn, createdAt time.Time) *queries.BookingView {
		return &queries.BookingView{
			ID:         uuid.New(),
			UserName:   name,
			TotalCents: totalCents,
			CheckIn:    checkIn,
			CreatedAt:  createdAt,
		}
	}

	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("by total ascending", func(t *testing.T) {
		views := []*queries.BookingView{
			view("a", 300, base, base),
			view("b", 100, base, base),
			view("c", 200, base, base),
		}

		sorted := queries.Sort(views, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc})

		totals := make([]int64, len(sorted))
		for i, v := range sorted {
			totals[i] = v.TotalCents
		}
		assert.Equal(t, []int64{100, 200, 300}, totals)
	})

	t.Run("by total descending", func(t *testing.T) {
		views := []*queries.BookingView{
			view("a", 300, base, base),
			view("b", 100, base, base),
			view("c", 200, base, base),
		}

		sorted := queries.Sort(views, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Desc})

		totals := make([]int64, len(sorted))
		for i, v := range sorted {
			totals[i] = v.TotalCents
		}
		assert.Equal(t, []int64{300, 200, 100}, totals)
	})

	t.Run("by customer is case insensitive", func(t *testing.T) {
		views := []*queries.BookingView{
			view("charlie", 0, base, base),
			view("Alice", 0, base, base),
			view("BOB", 0, base, base),
		}

		sorted := queries.Sort(views, queries.SortSpec{Field: queries.SortByCustomer, Direction: queries.Asc})

		names := make([]string, len(sorted))
		for i, v := range sorted {
			names[i] = v.UserName
		}
		assert.Equal(t, []string{"Alice", "BOB", "charlie"}, names)
	})

	t.Run("by check-in date", func(t *testing.T) {
		views := []*queries.BookingView{
			view("a", 0, base.AddDate(0, 0, 5), base),
			view("b", 0, base, base),
			view("c", 0, base.AddDate(0, 0, 2), base),
		}

		sorted := queries.Sort(views, queries.SortSpec{Field: queries.SortByCheckIn, Direction: queries.Asc})

		names := make([]string, len(sorted))
		for i, v := range sorted {
			names[i] = v.UserName
		}
		assert.Equal(t, []string{"b", "c", "a"}, names)
	})

	t.Run("ties keep their relative order", func(t *testing.T) {
		views := []*queries.BookingView{
			view("first", 100, base, base),
			view("second", 100, base, base),
			view("third", 100, base, base),
		}

		sorted := queries.Sort(views, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc})

		names := make([]string, len(sorted))
		for i, v := range sorted {
			names[i] = v.UserName
		}
		assert.Equal(t, []string{"first", "second", "third"}, names)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		views := []*queries.BookingView{
			view("a", 300, base, base),
			view("b", 100, base, base),
		}

		_ = queries.Sort(views, queries.SortSpec{Field: queries.SortByTotal, Direction: queries.Asc})

		assert.Equal(t, "a", views[0].UserName)
		assert.Equal(t, "b", views[1].UserName)
	})
}

func TestFilter(t *testing.T) {
	plazaID := uuid.MustParse("7b9f34a0-1c2d-4e5f-8a9b-0c1d2e3f4a5b")
	views := []*queries.BookingView{
		{ID: plazaID, UserName: "Jane Doe", UserEmail: "jane@example.com", HotelName: "Grand Plaza", HotelLocation: "Berlin"},
		{ID: uuid.New(), UserName: "John Smith", UserEmail: "john@example.com", HotelName: "Hotel Excelsior", HotelLocation: "Vienna"},
		{ID: uuid.New(), UserName: "Maria Garcia", UserEmail: "maria@example.com", HotelName: "Seaside Resort", HotelLocation: "Lisbon"},
	}

	matchedNames := func(query string) []string {
		matched := queries.Filter(views, query)
		names := make([]string, len(matched))
		for i, v := range matched {
			names[i] = v.UserName
		}
		return names
	}

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Equal(t, []string{"Jane Doe", "John Smith", "Maria Garcia"}, matchedNames(""))
	})

	t.Run("hotel name match is case insensitive", func(t *testing.T) {
		for _, query := range []string{"Grand Plaza", "plaza", "PLAZA", "pLaZa"} {
			assert.Equal(t, []string{"Jane Doe"}, matchedNames(query), "query %q", query)
		}
	})

	t.Run("matches customer name", func(t *testing.T) {
		assert.Equal(t, []string{"John Smith"}, matchedNames("smith"))
	})

	t.Run("matches email", func(t *testing.T) {
		assert.Equal(t, []string{"Maria Garcia"}, matchedNames("maria@"))
	})

	t.Run("matches location", func(t *testing.T) {
		assert.Equal(t, []string{"Jane Doe"}, matchedNames("berlin"))
	})

	t.Run("matches identifier substring", func(t *testing.T) {
		assert.Equal(t, []string{"Jane Doe"}, matchedNames("7b9f34a0"))
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		assert.Equal(t, []string{"John Smith"}, matchedNames("  excelsior  "))
	})

	t.Run("no match yields an empty result, not an error", func(t *testing.T) {
		matched := queries.Filter(views, "zanzibar")
		require.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = queries.Filter(views, "plaza")
		assert.Len(t, views, 3)
		assert.Equal(t, "Jane Doe", views[0].UserName)
	})
}
