package readstore

import (
	"context"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/pgconv"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelViewQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelByIDRow, error)
	ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.ListHotelsRow, error)
	CountHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.CountHotelsParams) (int64, error)
}

type HotelReadStore struct {
	queries HotelViewQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelViewQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	return &queries.HotelView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Address:     row.Address,
		City:        row.City,
		Country:     row.Country,
		Images:      row.Images,
		Amenities:   row.Amenities,
		Rating:      row.Rating,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		Owner: queries.HotelOwnerSummary{
			ID:        row.OwnerID,
			Email:     row.OwnerEmail,
			FirstName: row.OwnerFirstName,
			LastName:  row.OwnerLastName,
		},
	}, nil
}

func (r *HotelReadStore) List(ctx context.Context, filter queries.HotelFilter, page queries.PageRequest) ([]*queries.HotelListItem, int64, error) {
	where := sqlc.CountHotelsParams{
		Search:    pgconv.StringPtrToPgtype(filter.Search),
		City:      pgconv.StringPtrToPgtype(filter.City),
		Country:   pgconv.StringPtrToPgtype(filter.Country),
		MinRating: pgconv.Float8PtrToPgtype(filter.MinRating),
		OwnerID:   pgconv.UUIDPtrToPgtype(filter.OwnerID),
	}

	rows, err := r.queries.ListHotels(ctx, r.db, sqlc.ListHotelsParams{
		Search:     where.Search,
		City:       where.City,
		Country:    where.Country,
		MinRating:  where.MinRating,
		OwnerID:    where.OwnerID,
		SortBy:     page.SortBy,
		SortDesc:   page.Desc(),
		PageLimit:  int32(page.Limit),
		PageOffset: int32(page.Offset()),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list hotels", err)
	}

	total, err := r.queries.CountHotels(ctx, r.db, where)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count hotels", err)
	}

	items := make([]*queries.HotelListItem, len(rows))
	for i, row := range rows {
		item := &queries.HotelListItem{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
			Address:     row.Address,
			City:        row.City,
			Country:     row.Country,
			Images:      row.Images,
			Amenities:   row.Amenities,
			Rating:      row.Rating,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
			RoomCount:   row.RoomCount,
		}
		if row.MinPriceCents.Valid {
			minPrice := row.MinPriceCents.Int64
			item.MinPriceCents = &minPrice
		}
		items[i] = item
	}
	return items, total, nil
}
