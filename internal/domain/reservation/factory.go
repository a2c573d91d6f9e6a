package reservation

import (
	"time"

	"luxstay-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

type BookingRequest struct {
	UserID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	SpecialRequests SpecialRequests
}

// Book runs the room and date checks in order and prices the stay.
// Overlap with existing bookings is checked by the caller against storage.
func (f *Factory) Book(room RoomSpec, req BookingRequest) (*Reservation, error) {
	if !room.IsAvailable {
		return nil, ErrRoomNotAvailable
	}
	if req.GuestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if req.GuestCount > room.Capacity {
		return nil, &CapacityError{Capacity: room.Capacity}
	}

	period, err := NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if period.CheckIn().Before(clock.StartOfDay(f.Clock.Now())) {
		return nil, ErrCheckInInPast
	}

	return &Reservation{
		id:              uuid.New(),
		roomID:          room.ID,
		userID:          req.UserID,
		period:          period,
		guestCount:      req.GuestCount,
		totalPrice:      f.PriceCalculator.TotalPrice(room.PricePerNight, period),
		status:          StatusPending,
		specialRequests: req.SpecialRequests,
	}, nil
}
