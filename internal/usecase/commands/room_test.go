//go:build unit

package commands_test

import (
	"context"
	"testing"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
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

type RoomCommandsTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	rooms       *sharedmock.MockRoomRepository
	roomQueries *queriesmock.MockRoomQueries
	cmds        commands.RoomCommands
}

func (s *RoomCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.mockCtrl)
	s.roomQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()

	s.cmds = commands.NewRoomCommands(s.uow, s.roomQueries)
}

func (s *RoomCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomCommandsSuite(t *testing.T) {
	suite.Run(t, new(RoomCommandsTestSuite))
}

func (s *RoomCommandsTestSuite) TestCreate() {
	ownerID := uuid.New()
	owner := auth.NewPrincipal(ownerID, "owner@example.com", user.RoleHotelOwner)

	s.Run("success: adds a room to an owned hotel", func() {
		h := builder.NewHotelBuilder().WithOwner(ownerID)
		b := builder.NewRoomBuilder().WithHotel(h.ID, ownerID)
		view := b.BuildView()
		s.reads.EXPECT().HotelByID(gomock.Any(), h.ID).Return(h.BuildSnapshot(), nil).Times(1)
		s.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) (uuid.UUID, error) {
				s.Equal(h.ID, r.HotelID())
				s.Equal(b.PricePerNightCents, r.PricePerNight().Cents())
				s.True(r.IsAvailable())
				return b.ID, nil
			}).Times(1)
		s.roomQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		got, err := s.cmds.Create(s.ctx, owner, h.ID, b.BuildDetails())

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: hotel not found", func() {
		hotelID := uuid.New()
		s.reads.EXPECT().HotelByID(gomock.Any(), hotelID).Return(nil, repoErr(infra.KindNotFound)).Times(1)

		_, err := s.cmds.Create(s.ctx, owner, hotelID, builder.NewRoomBuilder().BuildDetails())

		s.ErrorIs(err, shared.ErrHotelNotFound)
	})

	s.Run("error: hotel belongs to someone else", func() {
		h := builder.NewHotelBuilder()
		s.reads.EXPECT().HotelByID(gomock.Any(), h.ID).Return(h.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Create(s.ctx, owner, h.ID, builder.NewRoomBuilder().BuildDetails())

		s.ErrorIs(err, commands.ErrRoomCreateForbidden)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: zero capacity", func() {
		h := builder.NewHotelBuilder().WithOwner(ownerID)
		details := builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.Capacity = 0 }).BuildDetails()
		s.reads.EXPECT().HotelByID(gomock.Any(), h.ID).Return(h.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Create(s.ctx, owner, h.ID, details)

		s.ErrorIs(err, room.ErrInvalidCapacity)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})
}

func (s *RoomCommandsTestSuite) TestUpdate() {
	ownerID := uuid.New()
	owner := auth.NewPrincipal(ownerID, "owner@example.com", user.RoleHotelOwner)

	s.Run("success: reprices and closes the room", func() {
		b := builder.NewRoomBuilder().WithHotel(uuid.New(), ownerID)
		price, err := money.FromCents(15000)
		s.Require().NoError(err)
		closed := false
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.rooms.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				s.Equal(int64(15000), r.PricePerNight().Cents())
				s.False(r.IsAvailable())
				s.Equal(b.Name, r.Details().Name)
				s.Equal(b.Capacity, r.Capacity())
				return nil
			}).Times(1)
		s.roomQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		_, err = s.cmds.Update(s.ctx, owner, b.ID, commands.RoomPatch{PricePerNight: &price, IsAvailable: &closed})

		s.Require().NoError(err)
	})

	s.Run("error: room not found", func() {
		id := uuid.New()
		s.reads.EXPECT().RoomByID(gomock.Any(), id).Return(nil, repoErr(infra.KindNotFound)).Times(1)

		_, err := s.cmds.Update(s.ctx, owner, id, commands.RoomPatch{})

		s.ErrorIs(err, shared.ErrRoomNotFound)
	})

	s.Run("error: room in another owner's hotel", func() {
		b := builder.NewRoomBuilder()
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, owner, b.ID, commands.RoomPatch{})

		s.ErrorIs(err, commands.ErrRoomUpdateForbidden)
	})

	s.Run("error: unknown room type", func() {
		b := builder.NewRoomBuilder().WithHotel(uuid.New(), ownerID)
		bad := room.Type("CASTLE")
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		_, err := s.cmds.Update(s.ctx, owner, b.ID, commands.RoomPatch{Type: &bad})

		s.ErrorIs(err, room.ErrInvalidRoomType)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})
}

func (s *RoomCommandsTestSuite) TestDelete() {
	ownerID := uuid.New()
	owner := auth.NewPrincipal(ownerID, "owner@example.com", user.RoleHotelOwner)

	s.Run("success: owner deletes the room", func() {
		b := builder.NewRoomBuilder().WithHotel(uuid.New(), ownerID)
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.rooms.EXPECT().Delete(gomock.Any(), b.ID).Return(nil).Times(1)

		s.NoError(s.cmds.Delete(s.ctx, owner, b.ID))
	})

	s.Run("error: room in another owner's hotel", func() {
		b := builder.NewRoomBuilder()
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)

		s.ErrorIs(s.cmds.Delete(s.ctx, owner, b.ID), commands.ErrRoomDeleteForbidden)
	})

	s.Run("error: room has reservations", func() {
		b := builder.NewRoomBuilder().WithHotel(uuid.New(), ownerID)
		s.reads.EXPECT().RoomByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil).Times(1)
		s.rooms.EXPECT().Delete(gomock.Any(), b.ID).Return(repoErr(infra.KindForeignKeyViolated)).Times(1)

		err := s.cmds.Delete(s.ctx, owner, b.ID)

		s.ErrorIs(err, commands.ErrRoomHasReservations)
		s.True(errs.Is(err, errs.ErrInvalidRequest))
	})
}
