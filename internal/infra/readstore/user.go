package readstore

import (
	"context"

	"luxstay-api/internal/infra"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/pgconv"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserProfileRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

// UserCredentials is the login-side record, including the password hash.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserProfile(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}

	return &queries.UserView{
		ID:               row.ID,
		Email:            row.Email,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Role:             row.Role,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		HotelCount:       row.HotelCount,
		ReservationCount: row.ReservationCount,
	}, nil
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &UserCredentials{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Role:         row.Role,
	}, nil
}
