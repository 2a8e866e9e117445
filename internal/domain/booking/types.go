package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCompleted PaymentStatus = "completed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

// PaymentStatusFor returns the canonical payment status that accompanies a
// booking status. Total over all inputs; unrecognized statuses map to pending.
func PaymentStatusFor(s Status) PaymentStatus {
	switch s {
	case StatusConfirmed:
		return PaymentPaid
	case StatusCompleted:
		return PaymentCompleted
	case StatusCancelled:
		return PaymentRefunded
	default:
		return PaymentPending
	}
}
