//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationByIDRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsRow), args.Error(1)
}

func (m *MockReservationViewQueries) CountReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationViewQueries) ListActiveStayPeriods(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveStayPeriodsParams) ([]sqlc.ListActiveStayPeriodsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListActiveStayPeriodsRow), args.Error(1)
}

func TestCountActiveOverlaps(t *testing.T) {
	roomID := uuid.New()
	base := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }
	stay := func(in, out int) sqlc.ListActiveStayPeriodsRow {
		return sqlc.ListActiveStayPeriodsRow{
			CheckInDate:  pgtype.Timestamptz{Time: day(in), Valid: true},
			CheckOutDate: pgtype.Timestamptz{Time: day(out), Valid: true},
		}
	}

	// requested stay is [day 0, day 4)
	tests := []struct {
		name   string
		booked []sqlc.ListActiveStayPeriodsRow
		want   int64
	}{
		{name: "success - no active stays", booked: nil, want: 0},
		{name: "success - booked stay inside the request", booked: []sqlc.ListActiveStayPeriodsRow{stay(1, 3)}, want: 1},
		{name: "success - booked stay covers the request", booked: []sqlc.ListActiveStayPeriodsRow{stay(-2, 6)}, want: 1},
		{name: "success - partial overlap on either edge", booked: []sqlc.ListActiveStayPeriodsRow{stay(-1, 1), stay(3, 5)}, want: 2},
		{name: "success - stay starting at check-out does not count", booked: []sqlc.ListActiveStayPeriodsRow{stay(4, 6)}, want: 0},
		{name: "success - mixed", booked: []sqlc.ListActiveStayPeriodsRow{stay(0, 4), stay(4, 7), stay(9, 11)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationViewQueries)
			mockQueries.On("ListActiveStayPeriods", mock.Anything, mock.Anything, sqlc.ListActiveStayPeriodsParams{
				RoomID: roomID,
				After:  pgtype.Timestamptz{Time: day(0), Valid: true},
			}).Return(tt.booked, nil)

			got, err := NewReservationReadStore(mockQueries, nil).CountActiveOverlaps(context.Background(), roomID, day(0), day(4))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			mockQueries.AssertExpectations(t)
		})
	}

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("ListActiveStayPeriods", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListActiveStayPeriodsRow(nil), assert.AnError)

		_, err := NewReservationReadStore(mockQueries, nil).CountActiveOverlaps(context.Background(), roomID, day(0), day(4))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("inverted range is rejected before querying", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)

		_, err := NewReservationReadStore(mockQueries, nil).CountActiveOverlaps(context.Background(), roomID, day(4), day(0))

		assert.Error(t, err)
		mockQueries.AssertNotCalled(t, "ListActiveStayPeriods", mock.Anything, mock.Anything, mock.Anything)
	})
}
