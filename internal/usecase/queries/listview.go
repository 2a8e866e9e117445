package queries

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Placeholders rendered for records with missing nested data. A bad record
// never aborts processing of the batch.
const (
	UnknownUserName  = "Unknown User"
	MissingFieldText = "N/A"
)

// BookingView is the read model the admin list renders.
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name"`
	UserFirstName string    `json:"-"`
	UserLastName  string    `json:"-"`
	UserEmail     string    `json:"user_email"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	RoomType      string    `json:"room_type"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// Normalize fills display placeholders in place: a missing user name is
// synthesized from first/last name parts, and blank hotel fields render as
// an explicit placeholder instead of an empty cell.
func Normalize(v *BookingView) {
	v.UserName = displayName(v.UserName, v.UserFirstName, v.UserLastName)
	if strings.TrimSpace(v.HotelName) == "" {
		v.HotelName = MissingFieldText
	}
	if strings.TrimSpace(v.HotelLocation) == "" {
		v.HotelLocation = MissingFieldText
	}
}

func displayName(name, first, last string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	synthesized := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if synthesized == "" {
		return UnknownUserName
	}
	return synthesized
}

type SortField string

const (
	SortByID            SortField = "id"
	SortByCustomer      SortField = "customer"
	SortByCheckIn       SortField = "check_in"
	SortByStatus        SortField = "status"
	SortByPaymentStatus SortField = "payment_status"
	SortByTotal         SortField = "total"
	SortByCreatedAt     SortField = "created_at"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortSpec struct {
	Field     SortField
	Direction Direction
}

func DefaultSort() SortSpec {
	return SortSpec{Field: SortByCreatedAt, Direction: Desc}
}

// ParseSortSpec maps request parameters onto a valid spec; unknown fields
// fall back to the created-at ordering.
func ParseSortSpec(field, direction string) SortSpec {
	spec := DefaultSort()
	switch SortField(field) {
	case SortByID, SortByCustomer, SortByCheckIn, SortByStatus, SortByPaymentStatus, SortByTotal, SortByCreatedAt:
		spec.Field = SortField(field)
	}
	if Direction(direction) == Asc {
		spec.Direction = Asc
	}
	return spec
}

// NextSort implements the column-header toggle: selecting the active field
// reverses direction, selecting a new field resets to descending.
func NextSort(current SortSpec, field SortField) SortSpec {
	if current.Field == field {
		if current.Direction == Desc {
			return SortSpec{Field: field, Direction: Asc}
		}
		return SortSpec{Field: field, Direction: Desc}
	}
	return SortSpec{Field: field, Direction: Desc}
}

// Sort returns a sorted copy; the input slice is never mutated. Each field
// has a fixed comparator type (date, string, number) so mismatched runtime
// values can never produce an undefined ordering.
func Sort(views []*BookingView, spec SortSpec) []*BookingView {
	sorted := make([]*BookingView, len(views))
	copy(sorted, views)

	less := lessFunc(spec.Field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if spec.Direction == Asc {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

func lessFunc(field SortField) func(a, b *BookingView) bool {
	switch field {
	case SortByID:
		return func(a, b *BookingView) bool { return lessFold(a.ID.String(), b.ID.String()) }
	case SortByCustomer:
		return func(a, b *BookingView) bool { return lessFold(a.UserName, b.UserName) }
	case SortByCheckIn:
		return func(a, b *BookingView) bool { return a.CheckIn.Before(b.CheckIn) }
	case SortByStatus:
		return func(a, b *BookingView) bool { return lessFold(a.Status, b.Status) }
	case SortByPaymentStatus:
		return func(a, b *BookingView) bool { return lessFold(a.PaymentStatus, b.PaymentStatus) }
	case SortByTotal:
		return func(a, b *BookingView) bool { return a.TotalCents < b.TotalCents }
	default:
		return func(a, b *BookingView) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// Filter returns the records whose customer name, customer email, hotel
// name, hotel location, or identifier contains the query, case-insensitive.
// An empty query matches everything. The input slice is never mutated, and
// the order among matches is preserved from the sorted input.
func Filter(views []*BookingView, query string) []*BookingView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		matched := make([]*BookingView, len(views))
		copy(matched, views)
		return matched
	}

	matched := make([]*BookingView, 0, len(views))
	for _, v := range views {
		if matchesQuery(v, query) {
			matched = append(matched, v)
		}
	}
	return matched
}

func matchesQuery(v *BookingView, loweredQuery string) bool {
	for _, field := range []string{
		v.UserName,
		v.UserEmail,
		v.HotelName,
		v.HotelLocation,
		v.ID.String(),
	} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
