package response

import (
	"time"

	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationHotelResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Country string    `json:"country"`
}

type ReservationRoomResponse struct {
	ID            uuid.UUID                `json:"id"`
	Name          string                   `json:"name"`
	RoomType      string                   `json:"roomType"`
	PricePerNight float64                  `json:"pricePerNight" copier:"-"`
	Capacity      int                      `json:"capacity"`
	Hotel         ReservationHotelResponse `json:"hotel" copier:"-"`
}

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type ReservationResponse struct {
	ID              uuid.UUID               `json:"id"`
	RoomID          uuid.UUID               `json:"roomId"`
	UserID          uuid.UUID               `json:"userId"`
	CheckInDate     time.Time               `json:"checkInDate"`
	CheckOutDate    time.Time               `json:"checkOutDate"`
	GuestCount      int                     `json:"guestCount"`
	TotalPrice      float64                 `json:"totalPrice" copier:"-"`
	Status          string                  `json:"status"`
	SpecialRequests *string                 `json:"specialRequests"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Room            ReservationRoomResponse `json:"room" copier:"-"`
	User            GuestResponse           `json:"user" copier:"-"`
}

func FromReservationView(v *queries.ReservationView) ReservationResponse {
	var res ReservationResponse
	copyFields(&res, v)
	res.TotalPrice = centsToDecimal(v.TotalPriceCents)

	copyFields(&res.Room, &v.Room)
	res.Room.PricePerNight = centsToDecimal(v.Room.PricePerNightCents)
	copyFields(&res.Room.Hotel, &v.Hotel)
	copyFields(&res.User, &v.Guest)
	return res
}

type ReservationEnvelope struct {
	Reservation ReservationResponse `json:"reservation"`
}

type ReservationMessageResponse struct {
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}

type AvailabilityResponse struct {
	Available               bool    `json:"available"`
	Reason                  *string `json:"reason,omitempty"`
	ConflictingReservations *int64  `json:"conflictingReservations,omitempty" copier:"-"`
}

// FromAvailabilityView reports a reason for a closed room and a conflict
// count otherwise.
func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	var res AvailabilityResponse
	copyFields(&res, v)
	if v.Reason == nil {
		count := v.ConflictingReservations
		res.ConflictingReservations = &count
	}
	return res
}
