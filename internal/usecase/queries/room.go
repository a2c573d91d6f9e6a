package queries

import (
	"context"
	"time"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// RoomClosedReason is reported when the room is switched off for booking.
const RoomClosedReason = "Room is not available"

var ErrAvailabilityDatesRequired = errs.Invalid("checkIn and checkOut dates are required")

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter, page PageRequest) ([]*RoomView, int64, error)
	ListAvailableByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

// OverlapCounter counts active reservations on a room that intersect a stay.
type OverlapCounter interface {
	CountActiveOverlaps(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter, page PageRequest) (*Page[*RoomView], error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, filter RoomFilter, page PageRequest) (*Page[*RoomView], error)
	// CheckAvailability is advisory; a later create may still lose a race.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut *time.Time) (*AvailabilityView, error)
}

type roomQueriesImpl struct {
	rooms    RoomReadStore
	overlaps OverlapCounter
}

func NewRoomQueries(rooms RoomReadStore, overlaps OverlapCounter) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, overlaps: overlaps}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrRoomNotFound)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter, page PageRequest) (*Page[*RoomView], error) {
	items, total, err := q.rooms.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, page), nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, filter RoomFilter, page PageRequest) (*Page[*RoomView], error) {
	RoomsInHotel(hotelID)(&filter)
	return q.List(ctx, filter, page)
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut *time.Time) (*AvailabilityView, error) {
	if checkIn == nil || checkOut == nil {
		return nil, ErrAvailabilityDatesRequired
	}
	if _, err := reservation.NewStayPeriod(*checkIn, *checkOut); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	room, err := q.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsAvailable {
		reason := RoomClosedReason
		return &AvailabilityView{RoomID: roomID, Available: false, Reason: &reason}, nil
	}

	count, err := q.overlaps.CountActiveOverlaps(ctx, roomID, *checkIn, *checkOut)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		RoomID:                  roomID,
		Available:               count == 0,
		ConflictingReservations: count,
	}, nil
}
