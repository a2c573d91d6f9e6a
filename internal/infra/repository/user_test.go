//go:build unit

package repository

import (
	"context"
	"testing"

	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserNameParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	wantParams := sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         "CLIENT",
	}

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			returned := u.ID()
			if tt.mockError != nil {
				returned = uuid.Nil
			}
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, wantParams).Return(returned, tt.mockError)

			repo := NewUserRepository(mockQueries, nil)

			id, err := repo.Create(context.Background(), u)

			if tt.mockError != nil {
				assert.Equal(t, uuid.Nil, id)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, u.ID(), id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateName(t *testing.T) {
	id := uuid.New()
	name, err := user.NewFullName("Janet", "Roe")
	require.NoError(t, err)
	params := sqlc.UpdateUserNameParams{ID: id, FirstName: "Janet", LastName: "Roe"}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUserName", mock.Anything, mock.Anything, params).Return(int64(1), nil)

		assert.NoError(t, NewUserRepository(mockQueries, nil).UpdateName(context.Background(), id, name))
		mockQueries.AssertExpectations(t)
	})

	t.Run("no row updated", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUserName", mock.Anything, mock.Anything, params).Return(int64(0), nil)

		err := NewUserRepository(mockQueries, nil).UpdateName(context.Background(), id, name)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUserName", mock.Anything, mock.Anything, params).Return(int64(0), assert.AnError)

		err := NewUserRepository(mockQueries, nil).UpdateName(context.Background(), id, name)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
