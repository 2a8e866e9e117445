package request

import (
	"time"

	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

// QuoteRequest mirrors the wizard's state at any point during date/room/extra
// selection. Dates are optional here: the quote is recomputed on every input
// change, including while the range is still incomplete.
type QuoteRequest struct {
	RoomID   uuid.UUID   `json:"room_id" binding:"required"`
	CheckIn  time.Time   `json:"check_in"`
	CheckOut time.Time   `json:"check_out"`
	Adults   int         `json:"adults" binding:"required,min=1"`
	Children int         `json:"children" binding:"min=0"`
	ExtraIDs []uuid.UUID `json:"extra_ids"`
}

func (r QuoteRequest) ToParams() usecase.QuoteParams {
	return usecase.QuoteParams{
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Adults:   r.Adults,
		Children: r.Children,
		ExtraIDs: r.ExtraIDs,
	}
}

type CreateBookingRequest struct {
	RoomID   uuid.UUID   `json:"room_id" binding:"required"`
	CheckIn  time.Time   `json:"check_in" binding:"required"`
	CheckOut time.Time   `json:"check_out" binding:"required"`
	Adults   int         `json:"adults" binding:"required,min=1"`
	Children int         `json:"children" binding:"min=0"`
	ExtraIDs []uuid.UUID `json:"extra_ids"`
	// QuotedTotalCents is the total the client displayed at submission time;
	// the server recomputes and rejects on mismatch.
	QuotedTotalCents *int64 `json:"quoted_total_cents,omitempty"`
}

func (r CreateBookingRequest) ToParams(userID uuid.UUID) usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		QuoteParams: usecase.QuoteParams{
			RoomID:   r.RoomID,
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
			Adults:   r.Adults,
			Children: r.Children,
			ExtraIDs: r.ExtraIDs,
		},
		UserID:           userID,
		QuotedTotalCents: r.QuotedTotalCents,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
