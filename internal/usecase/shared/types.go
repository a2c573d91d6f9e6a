package shared

import (
	"time"

	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	HotelOwnerID       uuid.UUID
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
}

func (s *RoomSnapshot) BookingSpec() (reservation.RoomSpec, error) {
	price, err := money.FromCents(s.PricePerNightCents)
	if err != nil {
		return reservation.RoomSpec{}, errs.Wrap(err, "invalid stored room price")
	}
	return reservation.RoomSpec{
		ID:            s.ID,
		Capacity:      s.Capacity,
		PricePerNight: price,
		IsAvailable:   s.IsAvailable,
	}, nil
}

func (s *RoomSnapshot) ToDomain() (*room.Room, error) {
	price, err := money.FromCents(s.PricePerNightCents)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored room price")
	}
	return room.ReconstructRoom(s.ID, s.HotelID, room.Details{
		Name:          s.Name,
		Description:   s.Description,
		Type:          room.Type(s.RoomType),
		PricePerNight: price,
		Capacity:      s.Capacity,
		Images:        s.Images,
		Amenities:     s.Amenities,
		IsAvailable:   s.IsAvailable,
	}, s.CreatedAt, s.UpdatedAt), nil
}

type HotelSnapshot struct {
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
}

func (s *HotelSnapshot) ToDomain() *hotel.Hotel {
	return hotel.ReconstructHotel(s.ID, s.OwnerID, s.Slug, hotel.Details{
		Name:        s.Name,
		Description: s.Description,
		Location:    hotel.Location{Address: s.Address, City: s.City, Country: s.Country},
		Images:      s.Images,
		Amenities:   s.Amenities,
		Rating:      s.Rating,
	}, s.CreatedAt, s.UpdatedAt)
}

// ReservationSnapshot carries the room rate and hotel owner needed to update a reservation.
type ReservationSnapshot struct {
	ID                 uuid.UUID
	RoomID             uuid.UUID
	UserID             uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	GuestCount         int
	TotalPriceCents    int64
	Status             string
	SpecialRequests    *string
	PricePerNightCents int64
	HotelOwnerID       uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (s *ReservationSnapshot) ToDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored stay period")
	}
	status, err := reservation.ParseStatus(s.Status)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored reservation status")
	}
	total, err := money.FromCents(s.TotalPriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored total price")
	}
	var requests reservation.SpecialRequests
	if s.SpecialRequests != nil {
		requests = reservation.NewSpecialRequests(*s.SpecialRequests)
	}
	return reservation.ReconstructReservation(
		s.ID, s.RoomID, s.UserID,
		period,
		s.GuestCount,
		total,
		status,
		requests,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func (s *ReservationSnapshot) PricePerNight() (money.Money, error) {
	price, err := money.FromCents(s.PricePerNightCents)
	if err != nil {
		return money.Money{}, errs.Wrap(err, "invalid stored room price")
	}
	return price, nil
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}
