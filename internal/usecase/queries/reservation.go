package queries

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationViewForbidden = errs.Forbidden("not authorized to view this reservation")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, page PageRequest) ([]*ReservationView, int64, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the access check; commands use it to read back what they wrote.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForGuest(ctx context.Context, principal auth.Principal, filter ReservationFilter, page PageRequest) (*Page[*ReservationView], error)
	ListForHotelOwner(ctx context.Context, principal auth.Principal, filter ReservationFilter, page PageRequest) (*Page[*ReservationView], error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	hotels HotelReadStore
}

func NewReservationQueries(store ReservationReadStore, hotels HotelReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, hotels: hotels}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, principal auth.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.AccessFor(principal, view.UserID, view.Hotel.OwnerID).CanManage() {
		return nil, ErrReservationViewForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForGuest(ctx context.Context, principal auth.Principal, filter ReservationFilter, page PageRequest) (*Page[*ReservationView], error) {
	ReservationsOfGuest(principal.ID())(&filter)
	return q.list(ctx, filter, page)
}

// ListForHotelOwner scopes to hotels the principal owns. A hotel filter naming
// a hotel outside that set is dropped.
func (q *reservationQueriesImpl) ListForHotelOwner(ctx context.Context, principal auth.Principal, filter ReservationFilter, page PageRequest) (*Page[*ReservationView], error) {
	if filter.HotelID != nil {
		owned, err := q.ownsHotel(ctx, principal.ID(), *filter.HotelID)
		if err != nil {
			return nil, err
		}
		if !owned {
			filter.HotelID = nil
		}
	}
	ReservationsInHotelsOwnedBy(principal.ID())(&filter)
	return q.list(ctx, filter, page)
}

func (q *reservationQueriesImpl) ownsHotel(ctx context.Context, ownerID, hotelID uuid.UUID) (bool, error) {
	h, err := q.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return h.OwnerID == ownerID, nil
}

func (q *reservationQueriesImpl) list(ctx context.Context, filter ReservationFilter, page PageRequest) (*Page[*ReservationView], error) {
	items, total, err := q.store.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, page), nil
}
