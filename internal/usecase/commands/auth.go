package commands

import (
	"context"

	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/infra"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/pkg/jwt"
	"luxstay-api/internal/pkg/password"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Unauthenticated("invalid credentials")
	ErrUserAlreadyExists  = errs.Invalid("user with this email already exists")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Role defaults to CLIENT when empty.
	Role string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	jwtService  *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userQueries queries.UserQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		userQueries: userQueries,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	reg, err := parseRegistration(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	_, err = a.uow.CommandReads().UserByEmail(ctx, reg.email.Value())
	switch {
	case err == nil:
		return nil, ErrUserAlreadyExists
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	hash, err := password.Hash(reg.password.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	newUser, err := user.NewUser(reg.email, hash, reg.name, reg.role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, newUser)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrUserAlreadyExists
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(ctx, createdID, newUser.Email().Value(), newUser.Role())
}

// Login answers every failure with the same error so registered emails stay hidden.
func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user role is invalid")
	}

	return a.issue(ctx, snap.ID, snap.Email, role)
}

func (a *authCommandsImpl) issue(ctx context.Context, id uuid.UUID, email string, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(id, email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	view, err := a.userQueries.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: view, Token: token}, nil
}

type registration struct {
	email    user.Email
	password user.Password
	name     user.FullName
	role     user.Role
}

func parseRegistration(req RegisterRequest) (registration, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return registration{}, err
	}
	plain, err := user.NewPassword(req.Password)
	if err != nil {
		return registration{}, err
	}
	name, err := user.NewFullName(req.FirstName, req.LastName)
	if err != nil {
		return registration{}, err
	}

	roleValue := req.Role
	if roleValue == "" {
		roleValue = user.RoleClient.String()
	}
	role, err := user.NewRole(roleValue)
	if err != nil || !role.IsSelfAssignable() {
		return registration{}, user.ErrInvalidRole
	}

	return registration{email: email, password: plain, name: name, role: role}, nil
}
