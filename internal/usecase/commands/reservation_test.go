//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/pkg/clock"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/shared"
	"luxstay-api/tests/common/builder"
	queriesmock "luxstay-api/tests/mock/queries"
	sharedmock "luxstay-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockReservationRepository
	locker   *sharedmock.MockRoomLocker
	queries  *queriesmock.MockReservationQueries
	cmds     commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.repo = sharedmock.NewMockReservationRepository(s.mockCtrl)
	s.locker = sharedmock.NewMockRoomLocker(s.mockCtrl)
	s.queries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.repo).AnyTimes()

	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	factory := reservation.NewFactory(clock.NewMockClock(now), reservation.NewNightlyPriceCalculator())
	s.cmds = commands.NewReservationCommands(s.uow, s.locker, factory, s.queries)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

// expectLock returns a counter of release calls.
func (s *ReservationCommandsTestSuite) expectLock(roomID uuid.UUID) *int {
	released := new(int)
	s.locker.EXPECT().Lock(gomock.Any(), roomID).
		Return(func() { *released++ }, nil).Times(1)
	return released
}

func createRequest(b *builder.ReservationBuilder) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestCount: b.GuestCount,
	}
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	guest := auth.NewPrincipal(uuid.New(), "guest@example.com", user.RoleClient)

	s.Run("success: prices the stay and inserts a pending reservation", func() {
		b := builder.NewReservationBuilder().WithGuest(guest.ID())
		view := b.BuildView()
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)
		released := s.expectLock(b.RoomID)
		s.reads.EXPECT().CountActiveOverlaps(gomock.Any(), b.RoomID, gomock.Any()).Return(int64(0), nil).Times(1)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(guest.ID(), res.UserID())
				s.Equal(reservation.StatusPending, res.Status())
				s.Equal(int64(30000), res.TotalPrice().Cents())
				s.Equal(int64(3), res.Period().Nights())
				return b.ID, nil
			}).Times(1)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(view, nil).Times(1)

		got, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.Require().NoError(err)
		s.Equal(view, got)
		s.Equal(1, *released)
	})

	s.Run("error: unknown room", func() {
		b := builder.NewReservationBuilder()
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.ErrorIs(err, shared.ErrRoomNotFound)
	})

	s.Run("error: booking rules are checked before locking", func() {
		cases := []struct {
			name    string
			mutate  func(*builder.ReservationBuilder)
			wantErr error
		}{
			{"room unavailable", func(b *builder.ReservationBuilder) { b.RoomAvailable = false }, reservation.ErrRoomNotAvailable},
			{"guests over capacity", func(b *builder.ReservationBuilder) { b.GuestCount = 3 }, reservation.ErrGuestCountExceedsCapacity},
			{"check-out before check-in", func(b *builder.ReservationBuilder) { b.CheckOut = b.CheckIn.AddDate(0, 0, -1) }, reservation.ErrCheckOutNotAfterCheckIn},
			{"same-day stay", func(b *builder.ReservationBuilder) { b.CheckOut = b.CheckIn }, reservation.ErrCheckOutNotAfterCheckIn},
			{"check-in in the past", func(b *builder.ReservationBuilder) {
				b.CheckIn = time.Date(2029, 12, 30, 0, 0, 0, 0, time.UTC)
				b.CheckOut = time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
			}, reservation.ErrCheckInInPast},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				b := builder.NewReservationBuilder().With(tc.mutate)
				s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)

				_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

				s.ErrorIs(err, tc.wantErr)
				s.True(errs.Is(err, errs.ErrInvalidRequest))
			})
		}
	})

	s.Run("success: check-in earlier today is accepted", func() {
		b := builder.NewReservationBuilder().WithGuest(guest.ID()).
			WithDates(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC))
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)
		s.expectLock(b.RoomID)
		s.reads.EXPECT().CountActiveOverlaps(gomock.Any(), b.RoomID, gomock.Any()).Return(int64(0), nil).Times(1)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(b.ID, nil).Times(1)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.NoError(err)
	})

	s.Run("error: overlapping active reservation", func() {
		b := builder.NewReservationBuilder()
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)
		released := s.expectLock(b.RoomID)
		s.reads.EXPECT().CountActiveOverlaps(gomock.Any(), b.RoomID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, period reservation.StayPeriod) (int64, error) {
				s.Equal(b.CheckIn, period.CheckIn())
				s.Equal(b.CheckOut, period.CheckOut())
				return 1, nil
			}).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.ErrorIs(err, reservation.ErrRoomAlreadyBooked)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
		s.Equal(1, *released)
	})

	s.Run("error: lock not acquired", func() {
		b := builder.NewReservationBuilder()
		busy := errs.Invalid("room is being booked by another request, please retry")
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)
		s.locker.EXPECT().Lock(gomock.Any(), b.RoomID).Return(nil, busy).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.ErrorIs(err, busy)
	})

	s.Run("error: insert failure is returned", func() {
		b := builder.NewReservationBuilder()
		dbErr := errors.New("connection reset")
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(1)
		s.expectLock(b.RoomID)
		s.reads.EXPECT().CountActiveOverlaps(gomock.Any(), b.RoomID, gomock.Any()).Return(int64(0), nil).Times(1)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, dbErr).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.ErrorIs(err, dbErr)
	})

	s.Run("error: stored room price is invalid", func() {
		b := builder.NewReservationBuilder()
		snap := b.BuildRoomSnapshot()
		snap.PricePerNightCents = -1
		s.reads.EXPECT().RoomByID(gomock.Any(), b.RoomID).Return(snap, nil).Times(1)

		_, err := s.cmds.Create(s.ctx, guest, createRequest(b))

		s.ErrorIs(err, money.ErrNegativeAmount)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdate() {
	guestID := uuid.New()
	ownerID := uuid.New()
	guest := auth.NewPrincipal(guestID, "guest@example.com", user.RoleClient)
	owner := auth.NewPrincipal(ownerID, "owner@example.com", user.RoleHotelOwner)
	admin := auth.NewPrincipal(uuid.New(), "admin@example.com", user.RoleAdmin)
	stranger := auth.NewPrincipal(uuid.New(), "stranger@example.com", user.RoleClient)

	confirmed := reservation.StatusConfirmed
	cancelled := reservation.StatusCancelled

	s.Run("success: hotel owner confirms", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(reservation.StatusConfirmed, res.Status())
				return nil
			}).Times(1)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.WithStatus(confirmed).BuildView(), nil).Times(1)

		view, err := s.cmds.Update(s.ctx, owner, b.ID, reservation.Patch{Status: &confirmed})

		s.Require().NoError(err)
		s.Equal("CONFIRMED", view.Status)
	})

	s.Run("success: admin may confirm any reservation", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, admin, b.ID, reservation.Patch{Status: &confirmed})

		s.NoError(err)
	})

	s.Run("success: date change reprices at the room rate", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		checkOut := b.CheckIn.AddDate(0, 0, 5)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(int64(50000), res.TotalPrice().Cents())
				s.Equal(checkOut, res.Period().CheckOut())
				return nil
			}).Times(1)
		s.queries.EXPECT().GetByIDSystem(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, guest, b.ID, reservation.Patch{CheckOut: &checkOut})

		s.NoError(err)
	})

	s.Run("error: guest cannot confirm", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, guest, b.ID, reservation.Patch{Status: &confirmed})

		s.ErrorIs(err, reservation.ErrHotelAuthorityRequired)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: unrelated user", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, stranger, b.ID, reservation.Patch{Status: &cancelled})

		s.ErrorIs(err, commands.ErrReservationUpdateForbidden)
	})

	s.Run("error: cancelled reservation cannot be confirmed", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID).WithStatus(reservation.StatusCancelled)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, owner, b.ID, reservation.Patch{Status: &confirmed})

		s.ErrorIs(err, reservation.ErrInvalidStatusTransition)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})

	s.Run("error: stored room price is invalid", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		snap := b.BuildSnapshot()
		snap.PricePerNightCents = -1
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(snap, nil).Times(1)

		_, err := s.cmds.Update(s.ctx, guest, b.ID, reservation.Patch{Status: &cancelled})

		s.ErrorIs(err, money.ErrNegativeAmount)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reads.EXPECT().ReservationByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.cmds.Update(s.ctx, guest, id, reservation.Patch{})

		s.ErrorIs(err, shared.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	guestID := uuid.New()
	ownerID := uuid.New()

	s.Run("success: guest cancels from any status", func() {
		for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed, reservation.StatusCompleted, reservation.StatusCancelled} {
			b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID).WithStatus(status)
			s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
			s.repo.EXPECT().UpdateStatus(gomock.Any(), b.ID, reservation.StatusCancelled).Return(nil).Times(1)

			err := s.cmds.Cancel(s.ctx, auth.NewPrincipal(guestID, "guest@example.com", user.RoleClient), b.ID)

			s.NoError(err, "from %s", status)
		}
	})

	s.Run("success: hotel owner cancels", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.repo.EXPECT().UpdateStatus(gomock.Any(), b.ID, reservation.StatusCancelled).Return(nil).Times(1)

		err := s.cmds.Cancel(s.ctx, auth.NewPrincipal(ownerID, "owner@example.com", user.RoleHotelOwner), b.ID)

		s.NoError(err)
	})

	s.Run("error: unrelated user", func() {
		b := builder.NewReservationBuilder().WithGuest(guestID).WithHotelOwner(ownerID)
		s.reads.EXPECT().ReservationByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		err := s.cmds.Cancel(s.ctx, auth.NewPrincipal(uuid.New(), "x@example.com", user.RoleHotelOwner), b.ID)

		s.ErrorIs(err, commands.ErrReservationCancelForbidden)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reads.EXPECT().ReservationByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)

		err := s.cmds.Cancel(s.ctx, auth.NewPrincipal(guestID, "guest@example.com", user.RoleClient), id)

		s.ErrorIs(err, shared.ErrReservationNotFound)
	})
}
