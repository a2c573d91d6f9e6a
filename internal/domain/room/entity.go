package room

import (
	"errors"
	"strings"
	"time"

	"luxstay-api/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("room name is required")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrInvalidPrice    = errors.New("price per night must be positive")
)

type Details struct {
	Name          string
	Description   string
	Type          Type
	PricePerNight money.Money
	Capacity      int
	Images        []string
	Amenities     []string
	IsAvailable   bool
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if !d.Type.IsValid() {
		return ErrInvalidRoomType
	}
	if d.PricePerNight.Cents() <= 0 {
		return ErrInvalidPrice
	}
	if d.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

type Room struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(hotelID uuid.UUID, details Details) (*Room, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &Room{
		id:      uuid.New(),
		hotelID: hotelID,
		details: normalize(details),
	}, nil
}

func ReconstructRoom(id, hotelID uuid.UUID, details Details, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		hotelID:   hotelID,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) Revise(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	r.details = normalize(details)
	return nil
}

// CanHost reports whether guests fit in the room.
func (r *Room) CanHost(guests int) bool {
	return guests <= r.details.Capacity
}

func normalize(d Details) Details {
	d.Name = strings.TrimSpace(d.Name)
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Amenities == nil {
		d.Amenities = []string{}
	}
	return d
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Details() Details           { return r.details }
func (r *Room) PricePerNight() money.Money { return r.details.PricePerNight }
func (r *Room) Capacity() int              { return r.details.Capacity }
func (r *Room) IsAvailable() bool          { return r.details.IsAvailable }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
