package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

const (
	MaxRoomNameLength = 255
)

// Room is catalog reference data. Hotel name and location are carried
// denormalized so booking records can copy them at creation time.
type Room struct {
	id               uuid.UUID
	name             string
	roomType         string
	hotelName        string
	hotelLocation    string
	nightlyRateCents int64
	capacity         int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(id uuid.UUID, name, roomType, hotelName, hotelLocation string, nightlyRateCents int64, capacity int) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:               id,
		name:             name,
		roomType:         roomType,
		hotelName:        strings.TrimSpace(hotelName),
		hotelLocation:    strings.TrimSpace(hotelLocation),
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
	}, nil
}

func (r *Room) CanAccommodate(guests int) bool {
	return guests <= r.capacity
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) Name() string            { return r.name }
func (r *Room) RoomType() string        { return r.roomType }
func (r *Room) HotelName() string       { return r.hotelName }
func (r *Room) HotelLocation() string   { return r.hotelLocation }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int           { return r.capacity }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }
