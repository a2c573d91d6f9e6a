package queries

import (
	"context"

	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindProfile(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.store.FindProfile(ctx, userID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrUserNotFound)
	}
	return view, nil
}
