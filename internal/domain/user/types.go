package user

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleHotelOwner Role = "HOTEL_OWNER"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleHotelOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether the role may be picked at registration.
func (r Role) IsSelfAssignable() bool {
	return r == RoleClient || r == RoleHotelOwner
}

func (r Role) CanManageHotels() bool {
	return r == RoleHotelOwner || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
