package queries

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, filter HotelFilter, page PageRequest) ([]*HotelListItem, int64, error)
}

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, filter HotelFilter, page PageRequest) (*Page[*HotelListItem], error)
	ListOwned(ctx context.Context, principal auth.Principal, filter HotelFilter, page PageRequest) (*Page[*HotelListItem], error)
}

type hotelQueriesImpl struct {
	hotels HotelReadStore
	rooms  RoomReadStore
}

func NewHotelQueries(hotels HotelReadStore, rooms RoomReadStore) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels, rooms: rooms}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrHotelNotFound)
	}

	rooms, err := q.rooms.ListAvailableByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Rooms = rooms
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter HotelFilter, page PageRequest) (*Page[*HotelListItem], error) {
	items, total, err := q.hotels.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, page), nil
}

func (q *hotelQueriesImpl) ListOwned(ctx context.Context, principal auth.Principal, filter HotelFilter, page PageRequest) (*Page[*HotelListItem], error) {
	HotelsOwnedBy(principal.ID())(&filter)
	return q.List(ctx, filter, page)
}
