package commands

import (
	"context"
	"time"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationUpdateForbidden = errs.Forbidden("not authorized to update this reservation")
	ErrReservationCancelForbidden = errs.Forbidden("not authorized to cancel this reservation")
)

type CreateReservationRequest struct {
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	SpecialRequests *string
}

type ReservationCommands interface {
	Create(ctx context.Context, principal auth.Principal, req CreateReservationRequest) (*queries.ReservationView, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, patch reservation.Patch) (*queries.ReservationView, error)
	Cancel(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	locker             shared.RoomLocker
	factory            *reservation.Factory
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	locker shared.RoomLocker,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		locker:             locker,
		factory:            factory,
		reservationQueries: reservationQueries,
	}
}

// Create validates the room and the stay before anything is written. The
// overlap check and the insert share one transaction and, when enabled, the
// room lock.
func (uc *reservationCommandsImpl) Create(ctx context.Context, principal auth.Principal, req CreateReservationRequest) (*queries.ReservationView, error) {
	roomSnap, err := uc.uow.CommandReads().RoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrRoomNotFound)
	}

	spec, err := roomSnap.BookingSpec()
	if err != nil {
		return nil, err
	}

	var requests reservation.SpecialRequests
	if req.SpecialRequests != nil {
		requests = reservation.NewSpecialRequests(*req.SpecialRequests)
	}

	res, err := uc.factory.Book(spec, reservation.BookingRequest{
		UserID:          principal.ID(),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		GuestCount:      req.GuestCount,
		SpecialRequests: requests,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	release, err := uc.locker.Lock(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conflicts, derr := tx.Reads().CountActiveOverlaps(ctx, res.RoomID(), res.Period())
		if derr != nil {
			return derr
		}
		if conflicts > 0 {
			return errs.Mark(reservation.ErrRoomAlreadyBooked, errs.ErrInvalidRequest)
		}

		createdID, derr = tx.Reservations().Create(ctx, res)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return uc.reservationQueries.GetByIDSystem(ctx, createdID)
}

func (uc *reservationCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, patch reservation.Patch) (*queries.ReservationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrReservationNotFound)
		}

		res, derr := snap.ToDomain()
		if derr != nil {
			return derr
		}

		rate, derr := snap.PricePerNight()
		if derr != nil {
			return derr
		}

		access := reservation.AccessFor(principal, snap.UserID, snap.HotelOwnerID)
		if derr = res.Apply(access, patch, rate, uc.factory.PriceCalculator); derr != nil {
			return markApplyError(derr)
		}

		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return uc.reservationQueries.GetByIDSystem(ctx, id)
}

// Cancel always lands on CANCELLED, whatever the current status.
func (uc *reservationCommandsImpl) Cancel(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrReservationNotFound)
		}

		res, derr := snap.ToDomain()
		if derr != nil {
			return derr
		}

		if derr = res.Cancel(reservation.AccessFor(principal, snap.UserID, snap.HotelOwnerID)); derr != nil {
			return ErrReservationCancelForbidden
		}

		return tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status())
	})
}

func markApplyError(err error) error {
	switch {
	case errs.Is(err, reservation.ErrNotReservationParty):
		return ErrReservationUpdateForbidden
	case errs.Is(err, reservation.ErrHotelAuthorityRequired):
		return errs.Mark(err, errs.ErrForbidden)
	default:
		return errs.Mark(err, errs.ErrInvalidRequest)
	}
}
