//go:build unit

package readstore

import (
	"context"
	"testing"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserProfileRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetUserProfileRow), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindCredentialsByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	owner := builder.NewUserBuilder().WithEmail("owner@example.com").AsHotelOwner().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantRole   string
		wantError  bool
	}{
		{
			name:       "success - client",
			email:      testUser.Email,
			mockReturn: testUser,
			wantRole:   testUser.Role,
		},
		{
			name:       "success - hotel owner",
			email:      owner.Email,
			mockReturn: owner,
			wantRole:   "HOTEL_OWNER",
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			creds, err := readStore.FindCredentialsByEmail(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, creds)

				if tt.mockError == pgx.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, creds)
				assert.Equal(t, tt.email, creds.Email)
				assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
				assert.Equal(t, tt.wantRole, creds.Role)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindProfile(t *testing.T) {
	profile := builder.NewUserBuilder().BuildProfileRow()

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.GetUserProfileRow
		mockError  error
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - profile with counters",
			id:         profile.ID,
			mockReturn: profile,
		},
		{
			name:       "user not found",
			id:         uuid.New(),
			mockReturn: sqlc.GetUserProfileRow{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         profile.ID,
			mockReturn: sqlc.GetUserProfileRow{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserProfile", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindProfile(context.Background(), tt.id)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, profile.ID, view.ID)
				assert.Equal(t, profile.Email, view.Email)
				assert.Equal(t, "Jane", view.FirstName)
				assert.Equal(t, int64(1), view.HotelCount)
				assert.Equal(t, int64(3), view.ReservationCount)
				assert.Equal(t, profile.CreatedAt.Time.UTC(), view.CreatedAt)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
