package readstore

import (
	"context"
	"time"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/pgconv"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	CountReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsParams) (int64, error)
	ListActiveStayPeriods(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveStayPeriodsParams) ([]sqlc.ListActiveStayPeriodsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(sqlc.ListReservationsRow(row)), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, page queries.PageRequest) ([]*queries.ReservationView, int64, error) {
	where := toReservationCountParams(filter)

	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{
		UserID:        where.UserID,
		OwnerID:       where.OwnerID,
		HotelID:       where.HotelID,
		RoomID:        where.RoomID,
		Status:        where.Status,
		CheckInFrom:   where.CheckInFrom,
		CheckOutUntil: where.CheckOutUntil,
		SortBy:        page.SortBy,
		SortDesc:      page.Desc(),
		PageLimit:     int32(page.Limit),
		PageOffset:    int32(page.Offset()),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}

	total, err := r.queries.CountReservations(ctx, r.db, where)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row)
	}
	return views, total, nil
}

// CountActiveOverlaps counts PENDING and CONFIRMED reservations on the room
// whose stay intersects [checkIn, checkOut).
func (r *ReservationReadStore) CountActiveOverlaps(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	rows, err := r.queries.ListActiveStayPeriods(ctx, r.db, sqlc.ListActiveStayPeriodsParams{
		RoomID: roomID,
		After:  pgconv.TimeToPgtype(stay.CheckIn()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to list active stays", err)
	}

	booked := make([]reservation.StayPeriod, 0, len(rows))
	for _, row := range rows {
		period, err := reservation.NewStayPeriod(pgconv.TimeFromPgtype(row.CheckInDate), pgconv.TimeFromPgtype(row.CheckOutDate))
		if err != nil {
			return 0, infra.WrapRepoErr("stored stay has an invalid range", err)
		}
		booked = append(booked, period)
	}
	return stay.CountOverlaps(booked), nil
}

func toReservationCountParams(f queries.ReservationFilter) sqlc.CountReservationsParams {
	status := pgtype.Text{}
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return sqlc.CountReservationsParams{
		UserID:        pgconv.UUIDPtrToPgtype(f.GuestID),
		OwnerID:       pgconv.UUIDPtrToPgtype(f.HotelOwnerID),
		HotelID:       pgconv.UUIDPtrToPgtype(f.HotelID),
		RoomID:        pgconv.UUIDPtrToPgtype(f.RoomID),
		Status:        status,
		CheckInFrom:   pgconv.TimePtrToPgtype(f.CheckInFrom),
		CheckOutUntil: pgconv.TimePtrToPgtype(f.CheckOutUntil),
	}
}

func toReservationView(row sqlc.ListReservationsRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		RoomID:          row.RoomID,
		UserID:          row.UserID,
		CheckInDate:     pgconv.TimeFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.TimeFromPgtype(row.CheckOutDate),
		GuestCount:      int(row.GuestCount),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		Room: queries.ReservationRoomSummary{
			ID:                 row.RoomID,
			Name:               row.RoomName,
			RoomType:           row.RoomType,
			PricePerNightCents: row.PricePerNightCents,
			Capacity:           int(row.RoomCapacity),
		},
		Hotel: queries.ReservationHotelSummary{
			ID:      row.HotelID,
			Name:    row.HotelName,
			City:    row.HotelCity,
			Country: row.HotelCountry,
			OwnerID: row.HotelOwnerID,
		},
		Guest: queries.GuestSummary{
			ID:        row.UserID,
			Email:     row.GuestEmail,
			FirstName: row.GuestFirstName,
			LastName:  row.GuestLastName,
		},
	}
}
