package repository

import (
	"context"

	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/infra/repository/converter"
	sqlc "luxstay-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelParams) (uuid.UUID, error)
	UpdateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelParams) (int64, error)
	DeleteHotel(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
	db      sqlc.DBTX
}

func NewHotelRepository(queries HotelWriteQueries, db sqlc.DBTX) *HotelRepository {
	return &HotelRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	id, err := r.queries.CreateHotel(ctx, r.db, converter.HotelToCreateParams(h))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return id, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	affected, err := r.queries.UpdateHotel(ctx, r.db, converter.HotelToUpdateParams(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteHotel(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}
