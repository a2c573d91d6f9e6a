package commands

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/pkg/patch"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelCreateForbidden = errs.Forbidden("only hotel owners can create hotels")
	ErrHotelUpdateForbidden = errs.Forbidden("not authorized to update this hotel")
	ErrHotelDeleteForbidden = errs.Forbidden("not authorized to delete this hotel")
	ErrHotelHasReservations = errs.Invalid("hotel has reservations and cannot be deleted")
)

// HotelPatch holds optional hotel fields. Nil means unchanged.
type HotelPatch struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Country     *string
	Images      *[]string
	Amenities   *[]string
	Rating      *float64
}

type HotelCommands interface {
	Create(ctx context.Context, principal auth.Principal, details hotel.Details) (*queries.HotelView, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, p HotelPatch) (*queries.HotelView, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type hotelCommandsImpl struct {
	uow          shared.UnitOfWork
	hotelQueries queries.HotelQueries
}

func NewHotelCommands(uow shared.UnitOfWork, hotelQueries queries.HotelQueries) HotelCommands {
	return &hotelCommandsImpl{uow: uow, hotelQueries: hotelQueries}
}

func (uc *hotelCommandsImpl) Create(ctx context.Context, principal auth.Principal, details hotel.Details) (*queries.HotelView, error) {
	if !principal.Role().CanManageHotels() {
		return nil, ErrHotelCreateForbidden
	}

	h, err := hotel.NewHotel(principal.ID(), details)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Hotels().Create(ctx, h)
		createdID = id
		return derr
	})
	if err != nil {
		return nil, err
	}

	return uc.hotelQueries.GetByID(ctx, createdID)
}

func (uc *hotelCommandsImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, p HotelPatch) (*queries.HotelView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().HotelByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrHotelNotFound)
		}
		if !principal.Owns(snap.OwnerID) {
			return ErrHotelUpdateForbidden
		}

		h := snap.ToDomain()
		if derr = h.Revise(p.apply(h.Details())); derr != nil {
			return errs.Mark(derr, errs.ErrInvalidRequest)
		}
		return tx.Hotels().Update(ctx, h)
	})
	if err != nil {
		return nil, err
	}

	return uc.hotelQueries.GetByID(ctx, id)
}

// Delete removes the hotel and, by cascade, its rooms.
func (uc *hotelCommandsImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().HotelByID(ctx, id)
		if derr != nil {
			return shared.NotFoundAs(derr, shared.ErrHotelNotFound)
		}
		if !principal.Owns(snap.OwnerID) {
			return ErrHotelDeleteForbidden
		}
		return mapDeleteError(tx.Hotels().Delete(ctx, id), shared.ErrHotelNotFound, ErrHotelHasReservations)
	})
}

func (p HotelPatch) apply(d hotel.Details) hotel.Details {
	return hotel.Details{
		Name:        patch.Coalesce(p.Name, d.Name),
		Description: patch.Coalesce(p.Description, d.Description),
		Location: hotel.Location{
			Address: patch.Coalesce(p.Address, d.Location.Address),
			City:    patch.Coalesce(p.City, d.Location.City),
			Country: patch.Coalesce(p.Country, d.Location.Country),
		},
		Images:    patch.Coalesce(p.Images, d.Images),
		Amenities: patch.Coalesce(p.Amenities, d.Amenities),
		Rating:    patch.Coalesce(p.Rating, d.Rating),
	}
}
