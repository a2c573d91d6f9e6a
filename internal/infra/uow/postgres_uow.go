package uow

import (
	"context"
	"errors"
	"log/slog"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/infra/readstore"
	"luxstay-api/internal/infra/repository"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// TxBeginner is the part of *pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	sqlc.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool TxBeginner
	q    *sqlc.Queries
}

func NewPostgresUoW(pool TxBeginner, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn once in a ReadCommitted transaction. Failures are returned
// to the caller as is; nothing is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	roomRepo        shared.RoomRepository
	hotelRepo       shared.HotelRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) Hotels() shared.HotelRepository {
	if t.hotelRepo == nil {
		t.hotelRepo = repository.NewHotelRepository(t.uow.q, t.dbtx)
	}
	return t.hotelRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{uow: t.uow, dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	roomStore        *readstore.RoomReadStore
	hotelStore       *readstore.HotelReadStore
	reservationStore *readstore.ReservationReadStore
	userStore        *readstore.UserReadStore
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) hotels() *readstore.HotelReadStore {
	if r.hotelStore == nil {
		r.hotelStore = readstore.NewHotelReadStore(r.uow.q, r.dbtx)
	}
	return r.hotelStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	rm, err := r.rooms().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RoomSnapshot{
		ID:                 rm.ID,
		HotelID:            rm.HotelID,
		HotelOwnerID:       rm.Hotel.OwnerID,
		Name:               rm.Name,
		Description:        rm.Description,
		RoomType:           rm.RoomType,
		PricePerNightCents: rm.PricePerNightCents,
		Capacity:           rm.Capacity,
		Images:             rm.Images,
		Amenities:          rm.Amenities,
		IsAvailable:        rm.IsAvailable,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) HotelByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	h, err := r.hotels().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.HotelSnapshot{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Name:        h.Name,
		Slug:        h.Slug,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Rating:      h.Rating,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, err := r.reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:                 res.ID,
		RoomID:             res.RoomID,
		UserID:             res.UserID,
		CheckIn:            res.CheckInDate,
		CheckOut:           res.CheckOutDate,
		GuestCount:         res.GuestCount,
		TotalPriceCents:    res.TotalPriceCents,
		Status:             res.Status,
		SpecialRequests:    res.SpecialRequests,
		PricePerNightCents: res.Room.PricePerNightCents,
		HotelOwnerID:       res.Hotel.OwnerID,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	u, err := r.users().FindCredentialsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
	}
	return snapshot, nil
}

func (r *commandReads) CountActiveOverlaps(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) (int64, error) {
	return r.reservations().CountActiveOverlaps(ctx, roomID, period.CheckIn(), period.CheckOut())
}
