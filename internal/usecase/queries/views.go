package queries

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRoomSummary struct {
	ID                 uuid.UUID
	Name               string
	RoomType           string
	PricePerNightCents int64
	Capacity           int
}

type ReservationHotelSummary struct {
	ID      uuid.UUID
	Name    string
	City    string
	Country string
	OwnerID uuid.UUID
}

type GuestSummary struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type ReservationView struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	UserID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	GuestCount      int
	TotalPriceCents int64
	Status          string
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Room            ReservationRoomSummary
	Hotel           ReservationHotelSummary
	Guest           GuestSummary
}

type RoomHotelSummary struct {
	ID      uuid.UUID
	Name    string
	Address string
	City    string
	Country string
	OwnerID uuid.UUID
}

type RoomView struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Name               string
	Description        string
	RoomType           string
	PricePerNightCents int64
	Capacity           int
	Images             []string
	Amenities          []string
	IsAvailable        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Hotel              RoomHotelSummary
}

type HotelOwnerSummary struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type HotelView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Slug        string
	Description string
	Address     string
	City        string
	Country     string
	Images      []string
	Amenities   []string
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Owner       HotelOwnerSummary
	// Rooms holds the available rooms, cheapest first.
	Rooms []*RoomView
}

type HotelListItem struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Slug          string
	Description   string
	Address       string
	City          string
	Country       string
	Images        []string
	Amenities     []string
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	RoomCount     int64
	MinPriceCents *int64
}

type AvailabilityView struct {
	RoomID                  uuid.UUID
	Available               bool
	Reason                  *string
	ConflictingReservations int64
}

type UserView struct {
	ID               uuid.UUID
	Email            string
	FirstName        string
	LastName         string
	Role             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	HotelCount       int64
	ReservationCount int64
}
