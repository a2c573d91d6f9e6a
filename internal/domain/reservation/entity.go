package reservation

import (
	"errors"
	"fmt"
	"time"

	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrRoomNotAvailable          = errors.New("room is not available")
	ErrGuestCountExceedsCapacity = errors.New("guest count exceeds room capacity")
	ErrCheckInInPast             = errors.New("check-in date cannot be in the past")
	ErrRoomAlreadyBooked         = errors.New("room is already booked for the selected dates")
	ErrInvalidGuestCount         = errors.New("guest count must be a positive integer")
)

type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("guest count exceeds room capacity of %d", e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrGuestCountExceedsCapacity
}

// RoomSpec is the part of a room the booking rules look at.
type RoomSpec struct {
	ID            uuid.UUID
	Capacity      int
	PricePerNight money.Money
	IsAvailable   bool
}

type Reservation struct {
	id              uuid.UUID
	roomID          uuid.UUID
	userID          uuid.UUID
	period          StayPeriod
	guestCount      int
	totalPrice      money.Money
	status          Status
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructReservation(
	id, roomID, userID uuid.UUID,
	period StayPeriod,
	guestCount int,
	totalPrice money.Money,
	status Status,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		roomID:          roomID,
		userID:          userID,
		period:          period,
		guestCount:      guestCount,
		totalPrice:      totalPrice,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Patch holds the fields a reservation update may change. Nil means unchanged.
type Patch struct {
	Status          *Status
	CheckIn         *time.Time
	CheckOut        *time.Time
	GuestCount      *int
	SpecialRequests *string
}

func (p Patch) ChangesDates() bool {
	return p.CheckIn != nil || p.CheckOut != nil
}

// Apply validates the whole patch before changing anything. A date change
// reprices the stay at pricePerNight. Overlap with other reservations is not rechecked.
func (r *Reservation) Apply(access Access, p Patch, pricePerNight money.Money, calc PriceCalculator) error {
	if !access.CanManage() {
		return ErrNotReservationParty
	}

	status := r.status
	if p.Status != nil {
		if err := access.authorizeStatus(*p.Status); err != nil {
			return err
		}
		if !r.status.CanTransitionTo(*p.Status) {
			return &TransitionError{From: r.status, To: *p.Status}
		}
		status = *p.Status
	}

	period, price := r.period, r.totalPrice
	if p.ChangesDates() {
		next, err := NewStayPeriod(
			patch.Coalesce(p.CheckIn, r.period.CheckIn()),
			patch.Coalesce(p.CheckOut, r.period.CheckOut()),
		)
		if err != nil {
			return err
		}
		period = next
		price = calc.TotalPrice(pricePerNight, next)
	}

	guests := patch.Coalesce(p.GuestCount, r.guestCount)
	if guests <= 0 {
		return ErrInvalidGuestCount
	}

	r.status = status
	r.period = period
	r.totalPrice = price
	r.guestCount = guests
	if p.SpecialRequests != nil {
		r.specialRequests = NewSpecialRequests(*p.SpecialRequests)
	}
	return nil
}

// Cancel sets CANCELLED regardless of the current status.
func (r *Reservation) Cancel(access Access) error {
	if !access.CanManage() {
		return ErrNotReservationParty
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) RoomID() uuid.UUID                { return r.roomID }
func (r *Reservation) UserID() uuid.UUID                { return r.userID }
func (r *Reservation) Period() StayPeriod               { return r.period }
func (r *Reservation) GuestCount() int                  { return r.guestCount }
func (r *Reservation) TotalPrice() money.Money          { return r.totalPrice }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
