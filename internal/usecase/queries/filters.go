package queries

import (
	"time"

	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/room"

	"github.com/google/uuid"
)

// Filters are built from predicates combined with AND. A nil field does not filter.

type ReservationFilter struct {
	GuestID       *uuid.UUID
	HotelOwnerID  *uuid.UUID
	HotelID       *uuid.UUID
	RoomID        *uuid.UUID
	Status        *reservation.Status
	CheckInFrom   *time.Time
	CheckOutUntil *time.Time
}

type ReservationPredicate func(*ReservationFilter)

func NewReservationFilter(preds ...ReservationPredicate) ReservationFilter {
	var f ReservationFilter
	for _, p := range preds {
		p(&f)
	}
	return f
}

func ReservationsOfGuest(id uuid.UUID) ReservationPredicate {
	return func(f *ReservationFilter) { f.GuestID = &id }
}

func ReservationsInHotelsOwnedBy(id uuid.UUID) ReservationPredicate {
	return func(f *ReservationFilter) { f.HotelOwnerID = &id }
}

func ReservationsInHotel(id uuid.UUID) ReservationPredicate {
	return func(f *ReservationFilter) { f.HotelID = &id }
}

func ReservationsForRoom(id uuid.UUID) ReservationPredicate {
	return func(f *ReservationFilter) { f.RoomID = &id }
}

func ReservationStatusIs(s reservation.Status) ReservationPredicate {
	return func(f *ReservationFilter) { f.Status = &s }
}

// CheckInFrom keeps reservations with checkIn >= t.
func CheckInFrom(t time.Time) ReservationPredicate {
	return func(f *ReservationFilter) { f.CheckInFrom = &t }
}

// CheckOutUntil keeps reservations with checkOut <= t.
func CheckOutUntil(t time.Time) ReservationPredicate {
	return func(f *ReservationFilter) { f.CheckOutUntil = &t }
}

type HotelFilter struct {
	Search    *string
	City      *string
	Country   *string
	MinRating *float64
	OwnerID   *uuid.UUID
}

type HotelPredicate func(*HotelFilter)

func NewHotelFilter(preds ...HotelPredicate) HotelFilter {
	var f HotelFilter
	for _, p := range preds {
		p(&f)
	}
	return f
}

// HotelSearch matches name, description or city, case-insensitively.
func HotelSearch(term string) HotelPredicate {
	return func(f *HotelFilter) { f.Search = &term }
}

func HotelCityContains(city string) HotelPredicate {
	return func(f *HotelFilter) { f.City = &city }
}

func HotelCountryContains(country string) HotelPredicate {
	return func(f *HotelFilter) { f.Country = &country }
}

func HotelMinRating(r float64) HotelPredicate {
	return func(f *HotelFilter) { f.MinRating = &r }
}

func HotelsOwnedBy(id uuid.UUID) HotelPredicate {
	return func(f *HotelFilter) { f.OwnerID = &id }
}

type RoomFilter struct {
	Search      *string
	HotelID     *uuid.UUID
	Type        *room.Type
	MinPrice    *money.Money
	MaxPrice    *money.Money
	MinCapacity *int
	IsAvailable *bool
}

type RoomPredicate func(*RoomFilter)

func NewRoomFilter(preds ...RoomPredicate) RoomFilter {
	var f RoomFilter
	for _, p := range preds {
		p(&f)
	}
	return f
}

// RoomSearch matches name or description, case-insensitively.
func RoomSearch(term string) RoomPredicate {
	return func(f *RoomFilter) { f.Search = &term }
}

func RoomsInHotel(id uuid.UUID) RoomPredicate {
	return func(f *RoomFilter) { f.HotelID = &id }
}

func RoomTypeIs(t room.Type) RoomPredicate {
	return func(f *RoomFilter) { f.Type = &t }
}

func RoomMinPrice(m money.Money) RoomPredicate {
	return func(f *RoomFilter) { f.MinPrice = &m }
}

func RoomMaxPrice(m money.Money) RoomPredicate {
	return func(f *RoomFilter) { f.MaxPrice = &m }
}

func RoomMinCapacity(n int) RoomPredicate {
	return func(f *RoomFilter) { f.MinCapacity = &n }
}

func RoomAvailableIs(v bool) RoomPredicate {
	return func(f *RoomFilter) { f.IsAvailable = &v }
}
