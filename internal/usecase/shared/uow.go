package shared

import (
	"context"

	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one ReadCommitted transaction; any error rolls back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside a transaction, for checks before any write.
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Hotels() HotelRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	CountActiveOverlaps(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateName(ctx context.Context, id uuid.UUID, name user.FullName) error
}

// RoomLocker serializes bookings of one room across processes.
type RoomLocker interface {
	Lock(ctx context.Context, roomID uuid.UUID) (release func(), err error)
}
