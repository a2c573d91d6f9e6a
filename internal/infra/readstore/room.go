package readstore

import (
	"context"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/pgconv"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomByIDRow, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomsParams) ([]sqlc.ListRoomsRow, error)
	CountRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.CountRoomsParams) (int64, error)
	ListAvailableRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomView(sqlc.ListRoomsRow(row)), nil
}

func (r *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter, page queries.PageRequest) ([]*queries.RoomView, int64, error) {
	where := toRoomCountParams(filter)

	rows, err := r.queries.ListRooms(ctx, r.db, sqlc.ListRoomsParams{
		Search:        where.Search,
		HotelID:       where.HotelID,
		RoomType:      where.RoomType,
		MinPriceCents: where.MinPriceCents,
		MaxPriceCents: where.MaxPriceCents,
		MinCapacity:   where.MinCapacity,
		IsAvailable:   where.IsAvailable,
		SortBy:        page.SortBy,
		SortDesc:      page.Desc(),
		PageLimit:     int32(page.Limit),
		PageOffset:    int32(page.Offset()),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list rooms", err)
	}

	total, err := r.queries.CountRooms(ctx, r.db, where)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count rooms", err)
	}

	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = toRoomView(row)
	}
	return views, total, nil
}

func (r *RoomReadStore) ListAvailableByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListAvailableRoomsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}

	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = &queries.RoomView{
			ID:                 row.ID,
			HotelID:            row.HotelID,
			Name:               row.Name,
			Description:        row.Description,
			RoomType:           row.RoomType,
			PricePerNightCents: row.PricePerNightCents,
			Capacity:           int(row.Capacity),
			Images:             row.Images,
			Amenities:          row.Amenities,
			IsAvailable:        row.IsAvailable,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views, nil
}

func toRoomCountParams(f queries.RoomFilter) sqlc.CountRoomsParams {
	params := sqlc.CountRoomsParams{
		Search:      pgconv.StringPtrToPgtype(f.Search),
		HotelID:     pgconv.UUIDPtrToPgtype(f.HotelID),
		IsAvailable: pgconv.BoolPtrToPgtype(f.IsAvailable),
	}
	if f.Type != nil {
		params.RoomType = pgtype.Text{String: f.Type.String(), Valid: true}
	}
	if f.MinPrice != nil {
		params.MinPriceCents = pgtype.Int8{Int64: f.MinPrice.Cents(), Valid: true}
	}
	if f.MaxPrice != nil {
		params.MaxPriceCents = pgtype.Int8{Int64: f.MaxPrice.Cents(), Valid: true}
	}
	if f.MinCapacity != nil {
		params.MinCapacity = pgtype.Int4{Int32: int32(*f.MinCapacity), Valid: true}
	}
	return params
}

func toRoomView(row sqlc.ListRoomsRow) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.ID,
		HotelID:            row.HotelID,
		Name:               row.Name,
		Description:        row.Description,
		RoomType:           row.RoomType,
		PricePerNightCents: row.PricePerNightCents,
		Capacity:           int(row.Capacity),
		Images:             row.Images,
		Amenities:          row.Amenities,
		IsAvailable:        row.IsAvailable,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		Hotel: queries.RoomHotelSummary{
			ID:      row.HotelID,
			Name:    row.HotelName,
			Address: row.HotelAddress,
			City:    row.HotelCity,
			Country: row.HotelCountry,
			OwnerID: row.HotelOwnerID,
		},
	}
}
