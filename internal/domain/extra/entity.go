package extra

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyExtraName = errors.New("extra name cannot be empty")
	ErrNegativePrice  = errors.New("extra price cannot be negative")
)

// PriceType selects the rule used to charge an extra.
type PriceType string

const (
	PerDay          PriceType = "per_day"
	PerPersonPerDay PriceType = "per_person_per_day"
	PerStay         PriceType = "per_stay"
)

func (p PriceType) String() string {
	return string(p)
}

type Extra struct {
	id         uuid.UUID
	name       string
	priceCents int64
	priceType  PriceType
	createdAt  time.Time
	updatedAt  time.Time
}

func NewExtra(id uuid.UUID, name string, priceCents int64, priceType PriceType) (*Extra, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyExtraName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Extra{
		id:         id,
		name:       name,
		priceCents: priceCents,
		priceType:  priceType,
	}, nil
}

// Cost charges the extra for a stay. Unrecognized price types charge the
// flat price once, independent of nights and guests.
func (e *Extra) Cost(nights int, guests int) int64 {
	switch e.priceType {
	case PerDay:
		return e.priceCents * int64(nights)
	case PerPersonPerDay:
		return e.priceCents * int64(guests) * int64(nights)
	default:
		return e.priceCents
	}
}

func (e *Extra) ID() uuid.UUID        { return e.id }
func (e *Extra) Name() string         { return e.name }
func (e *Extra) PriceCents() int64    { return e.priceCents }
func (e *Extra) PriceType() PriceType { return e.priceType }
func (e *Extra) CreatedAt() time.Time { return e.createdAt }
func (e *Extra) UpdatedAt() time.Time { return e.updatedAt }
