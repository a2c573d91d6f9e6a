package repository

import (
	"context"

	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/infra/repository/converter"
	sqlc "luxstay-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserNameParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Create returns KindDuplicateKey when the email is taken.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, id uuid.UUID, name user.FullName) error {
	affected, err := r.queries.UpdateUserName(ctx, r.db, sqlc.UpdateUserNameParams{
		ID:        id,
		FirstName: name.First(),
		LastName:  name.Last(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user name", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
