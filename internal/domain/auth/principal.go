package auth

import (
	"luxstay-api/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request. It is built once by the
// auth middleware and passed by value to every use case.
type Principal struct {
	id    uuid.UUID
	email string
	role  user.Role
}

func NewPrincipal(id uuid.UUID, email string, role user.Role) Principal {
	return Principal{id: id, email: email, role: role}
}

func (p Principal) ID() uuid.UUID   { return p.id }
func (p Principal) Email() string   { return p.email }
func (p Principal) Role() user.Role { return p.role }

func (p Principal) IsAdmin() bool {
	return p.role == user.RoleAdmin
}

func (p Principal) IsZero() bool {
	return p.id == uuid.Nil
}

// Owns reports whether the principal is the given owner or an admin.
func (p Principal) Owns(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.id == ownerID
}
