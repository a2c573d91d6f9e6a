//go:build unit

package repository

import (
	"context"
	"testing"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomWriteQueries struct {
	mock.Mock
}

func (m *MockRoomWriteQueries) CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRoomWriteQueries) UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomWriteQueries) DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestRoomRepository_Create(t *testing.T) {
	r, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Images = nil }).BuildDomain()
	require.NoError(t, err)

	mockQueries := new(MockRoomWriteQueries)
	mockQueries.On("CreateRoom", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateRoomParams) bool {
		return p.ID == r.ID() && p.HotelID == r.HotelID() && p.PricePerNightCents == 12000 &&
			p.RoomType == "DOUBLE" && p.Images != nil && len(p.Images) == 0
	})).Return(r.ID(), nil)

	id, err := NewRoomRepository(mockQueries, nil).Create(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, r.ID(), id)
	mockQueries.AssertExpectations(t)
}

func TestRoomRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "room not found", affected: 0, wantKind: infra.KindNotFound},
		{
			name:      "referenced by reservations",
			mockError: &pgconn.PgError{Code: "23503", ConstraintName: "reservations_room_id_fkey"},
			wantKind:  infra.KindForeignKeyViolated,
		},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRoomWriteQueries)
			mockQueries.On("DeleteRoom", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockError)

			err := NewRoomRepository(mockQueries, nil).Delete(context.Background(), id)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
