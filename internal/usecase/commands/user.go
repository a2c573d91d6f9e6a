package commands

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/pkg/patch"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"
)

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, principal auth.Principal, req UpdateProfileRequest) (*queries.UserView, error)
}

type userCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, userQueries queries.UserQueries) UserCommands {
	return &userCommandsImpl{uow: uow, userQueries: userQueries}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, principal auth.Principal, req UpdateProfileRequest) (*queries.UserView, error) {
	current, err := uc.userQueries.GetProfile(ctx, principal.ID())
	if err != nil {
		return nil, err
	}

	name, err := user.NewFullName(
		patch.Coalesce(req.FirstName, current.FirstName),
		patch.Coalesce(req.LastName, current.LastName),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.NotFoundAs(tx.Users().UpdateName(ctx, principal.ID(), name), shared.ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}

	return uc.userQueries.GetProfile(ctx, principal.ID())
}
