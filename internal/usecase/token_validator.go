package usecase

import (
	"luxstay-api/internal/domain/auth"
	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the request principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, jwt.ErrInvalidToken
	}

	return auth.NewPrincipal(claims.UserID, claims.Email, role), nil
}
