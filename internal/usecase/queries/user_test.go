//go:build unit

package queries_test

import (
	"context"
	"testing"

	"luxstay-api/internal/infra"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"
	"luxstay-api/tests/common/builder"
	queriesmock "luxstay-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	users    *queriesmock.MockUserReadStore
	queries  queries.UserQueries
}

func (s *UserQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.queries = queries.NewUserQueries(s.users)
}

func (s *UserQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserQueriesSuite(t *testing.T) {
	suite.Run(t, new(UserQueriesTestSuite))
}

func (s *UserQueriesTestSuite) TestGetProfile() {
	s.Run("success", func() {
		b := builder.NewUserBuilder()
		view := b.BuildView()
		s.users.EXPECT().FindProfile(gomock.Any(), b.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetProfile(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.users.EXPECT().FindProfile(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetProfile(s.ctx, id)

		s.ErrorIs(err, shared.ErrUserNotFound)
	})
}
