package commands

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/pkg/patch"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomCreateForbidden = errs.Forbidden("not authorized to add rooms to this hotel")
	ErrRoomUpdateForbidden = errs.Forbidden("not authorized to update this room")
	ErrRoomDeleteForbidden = errs.Forbidden("not authorized to delete this room")
	ErrRoomHasReservations = errs.Invalid("room has reservations and cannot be deleted")
)

// RoomPatch holds optional room fields. Nil means unchanged.
type RoomPatch struct {
	Name          *string
	Description   *string
	Type          *room.Type
	PricePerNight *money.Money
	Capacity      *int
	Images        *[]string
	Amenities     *[]string
	IsAvailable   *bool
}

type RoomCommands interface {
	Create(ctx context.Context, principal auth.Principal, hotelID uuid.UUID, details room.Details) (*queries.RoomView, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, p RoomPatch) (*queries.RoomView, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
}

func NewRoomCommands(uow shared.UnitOfWork, roomQueries queries.RoomQueries) RoomCommands {
	return &roomCommandsImpl{uow: uow, roomQueries: roomQueries}
}

func (uc *roomCommandsImpl) Create(ctx context.Context, principal auth.Principal, hotelID uuid.UUID, details room.Details) (*queries.RoomView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Reads().HotelByID(ctx, hotelID)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrHotelNotFound)
		}
		if !principal.Owns(h.OwnerID) {
			return ErrRoomCreateForbidden
		}

		r, derr := room.NewRoom(hotelID, details)
		if derr != nil {
			return errs.Mark(derr, errs.ErrInvalidRequest)
		}
		createdID, derr = tx.Rooms().Create(ctx, r)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return uc.roomQueries.GetByID(ctx, createdID)
}

func (uc *roomCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, p RoomPatch) (*queries.RoomView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrRoomNotFound)
		}
		if !principal.Owns(snap.HotelOwnerID) {
			return ErrRoomUpdateForbidden
		}

		r, derr := snap.ToDomain()
		if derr != nil {
			return derr
		}
		if derr = r.Revise(p.apply(r.Details())); derr != nil {
			return errs.Mark(derr, errs.ErrInvalidRequest)
		}
		return tx.Rooms().Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	return uc.roomQueries.GetByID(ctx, id)
}

func (uc *roomCommandsImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrRoomNotFound)
		}
		if !principal.Owns(snap.HotelOwnerID) {
			return ErrRoomDeleteForbidden
		}
		return mapDeleteError(tx.Rooms().Delete(ctx, id), shared.ErrRoomNotFound, ErrRoomHasReservations)
	})
}

func (p RoomPatch) apply(d room.Details) room.Details {
	return room.Details{
		Name:          patch.Coalesce(p.Name, d.Name),
		Description:   patch.Coalesce(p.Description, d.Description),
		Type:          patch.Coalesce(p.Type, d.Type),
		PricePerNight: patch.Coalesce(p.PricePerNight, d.PricePerNight),
		Capacity:      patch.Coalesce(p.Capacity, d.Capacity),
		Images:        patch.Coalesce(p.Images, d.Images),
		Amenities:     patch.Coalesce(p.Amenities, d.Amenities),
		IsAvailable:   patch.Coalesce(p.IsAvailable, d.IsAvailable),
	}
}

func mapDeleteError(err, notFound, referenced error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return referenced
	default:
		return err
	}
}
