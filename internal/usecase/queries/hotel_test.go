//go:build unit

package queries_test

import (
	"context"
	"testing"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"
	"luxstay-api/tests/common/builder"
	queriesmock "luxstay-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	hotels   *queriesmock.MockHotelReadStore
	rooms    *queriesmock.MockRoomReadStore
	queries  queries.HotelQueries
}

func (s *HotelQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.hotels = queriesmock.NewMockHotelReadStore(s.mockCtrl)
	s.rooms = queriesmock.NewMockRoomReadStore(s.mockCtrl)
	s.queries = queries.NewHotelQueries(s.hotels, s.rooms)
}

func (s *HotelQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelQueriesSuite(t *testing.T) {
	suite.Run(t, new(HotelQueriesTestSuite))
}

func (s *HotelQueriesTestSuite) TestGetByID() {
	s.Run("success: attaches the available rooms", func() {
		b := builder.NewHotelBuilder()
		rooms := []*queries.RoomView{
			builder.NewRoomBuilder().WithHotel(b.ID, b.OwnerID).BuildView(),
		}
		s.hotels.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)
		s.rooms.EXPECT().ListAvailableByHotel(gomock.Any(), b.ID).Return(rooms, nil).Times(1)

		got, err := s.queries.GetByID(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(rooms, got.Rooms)
		s.Equal(b.Slug(), got.Slug)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.hotels.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(s.ctx, id)

		s.ErrorIs(err, shared.ErrHotelNotFound)
	})
}

func (s *HotelQueriesTestSuite) TestListOwned() {
	s.Run("success: forces the owner filter", func() {
		owner := auth.NewPrincipal(uuid.New(), "owner@example.com", user.RoleHotelOwner)
		page := queries.NewPageRequest(1, 10, "name", "asc", queries.HotelSort)
		in := queries.NewHotelFilter(queries.HotelCityContains("lis"))
		want := queries.NewHotelFilter(queries.HotelCityContains("lis"), queries.HotelsOwnedBy(owner.ID()))
		items := []*queries.HotelListItem{builder.NewHotelBuilder().WithOwner(owner.ID()).BuildListItem()}
		s.hotels.EXPECT().List(gomock.Any(), want, page).Return(items, int64(1), nil).Times(1)

		got, err := s.queries.ListOwned(s.ctx, owner, in, page)

		s.Require().NoError(err)
		s.Equal(items, got.Items)
	})
}
