package response

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Nights           int   `json:"nights"`
	RoomTotalCents   int64 `json:"room_total_cents"`
	ExtrasTotalCents int64 `json:"extras_total_cents"`
	SubtotalCents    int64 `json:"subtotal_cents"`
	TaxCents         int64 `json:"tax_cents"`
	TotalCents       int64 `json:"total_cents"`
}

func FromPriceBreakdown(p *booking.PriceBreakdown) QuoteResponse {
	return QuoteResponse{
		Nights:           p.Nights,
		RoomTotalCents:   p.RoomTotal.Cents(),
		ExtrasTotalCents: p.ExtrasTotal.Cents(),
		SubtotalCents:    p.Subtotal.Cents(),
		TaxCents:         p.Tax.Cents(),
		TotalCents:       p.Total.Cents(),
	}
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	HotelName     string    `json:"hotelName"`
	HotelLocation string    `json:"hotelLocation"`
	RoomType      string    `json:"roomType"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalCents    int64     `json:"totalCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingListItemResponse {
	return &BookingListItemResponse{
		ID:            v.ID,
		CustomerName:  v.UserName,
		CustomerEmail: v.UserEmail,
		HotelName:     v.HotelName,
		HotelLocation: v.HotelLocation,
		RoomType:      v.RoomType,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		TotalCents:    v.TotalCents,
		CreatedAt:     v.CreatedAt,
	}
}

type BookedExtraResponse struct {
	ExtraID    uuid.UUID `json:"extraId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	PriceType  string    `json:"priceType"`
	CostCents  int64     `json:"costCents"`
}

type BookingResponse struct {
	BookingListItemResponse
	RoomID           uuid.UUID             `json:"roomId"`
	Adults           int                   `json:"adults"`
	Children         int                   `json:"children"`
	Nights           int                   `json:"nights"`
	RoomTotalCents   int64                 `json:"roomTotalCents"`
	ExtrasTotalCents int64                 `json:"extrasTotalCents"`
	SubtotalCents    int64                 `json:"subtotalCents"`
	TaxCents         int64                 `json:"taxCents"`
	Extras           []BookedExtraResponse `json:"extras"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

func FromBookingDetailView(v *queries.BookingDetailView) *BookingResponse {
	extras := make([]BookedExtraResponse, len(v.Extras))
	for i, e := range v.Extras {
		extras[i] = BookedExtraResponse{
			ExtraID:    e.ExtraID,
			Name:       e.Name,
			PriceCents: e.PriceCents,
			PriceType:  e.PriceType,
			CostCents:  e.CostCents,
		}
	}

	return &BookingResponse{
		BookingListItemResponse: *FromBookingView(&v.BookingView),
		RoomID:                  v.RoomID,
		Adults:                  v.Adults,
		Children:                v.Children,
		Nights:                  v.Nights,
		RoomTotalCents:          v.RoomTotalCents,
		ExtrasTotalCents:        v.ExtrasTotalCents,
		SubtotalCents:           v.SubtotalCents,
		TaxCents:                v.TaxCents,
		Extras:                  extras,
		UpdatedAt:               v.UpdatedAt,
	}
}
