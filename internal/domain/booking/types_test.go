//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		status booking.Status
		want   booking.PaymentStatus
	}{
		{name: "pending stays pending", status: booking.StatusPending, want: booking.PaymentPending},
		{name: "confirmed is paid", status: booking.StatusConfirmed, want: booking.PaymentPaid},
		{name: "completed is completed", status: booking.StatusCompleted, want: booking.PaymentCompleted},
		{name: "cancelled is refunded", status: booking.StatusCancelled, want: booking.PaymentRefunded},
		{name: "unrecognized falls back to pending", status: booking.Status("garbage"), want: booking.PaymentPending},
		{name: "empty falls back to pending", status: booking.Status(""), want: booking.PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.PaymentStatusFor(tt.status))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCompleted,
	} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, booking.Status("archived").IsValid())
	assert.False(t, booking.Status("").IsValid())
}
