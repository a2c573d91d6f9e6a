//go:build unit

package repository

import (
	"context"
	"testing"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	b := builder.NewReservationBuilder().With(func(r *builder.ReservationBuilder) {
		r.SpecialRequests = "late arrival"
	})
	res := b.BuildDomain()

	wantParams := sqlc.CreateReservationParams{
		ID:              b.ID,
		RoomID:          b.RoomID,
		UserID:          b.UserID,
		CheckInDate:     pgtype.Timestamptz{Time: b.CheckIn, Valid: true},
		CheckOutDate:    pgtype.Timestamptz{Time: b.CheckOut, Valid: true},
		GuestCount:      2,
		TotalPriceCents: 30000,
		Status:          "PENDING",
		SpecialRequests: pgtype.Text{String: "late arrival", Valid: true},
	}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, wantParams).Return(b.ID, nil)

		id, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), res)

		require.NoError(t, err)
		assert.Equal(t, b.ID, id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("room deleted meanwhile", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, wantParams).
			Return(uuid.Nil, &pgconn.PgError{Code: "23503"})

		_, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), res)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	params := sqlc.UpdateReservationStatusParams{ID: id, Status: "CANCELLED"}

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "reservation not found", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("UpdateReservationStatus", mock.Anything, mock.Anything, params).Return(tt.affected, tt.mockError)

			err := NewReservationRepository(mockQueries, nil).UpdateStatus(context.Background(), id, reservation.StatusCancelled)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_Update(t *testing.T) {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed)
	res := b.BuildDomain()

	mockQueries := new(MockReservationWriteQueries)
	mockQueries.On("UpdateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateReservationParams) bool {
		return p.ID == b.ID && p.Status == "CONFIRMED" && !p.SpecialRequests.Valid && p.TotalPriceCents == 30000
	})).Return(int64(0), nil)

	err := NewReservationRepository(mockQueries, nil).Update(context.Background(), res)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	mockQueries.AssertExpectations(t)
}
