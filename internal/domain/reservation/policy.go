package reservation

import (
	"errors"

	"luxstay-api/internal/domain/auth"

	"github.com/google/uuid"
)

var (
	ErrNotReservationParty    = errors.New("not authorized to access this reservation")
	ErrHotelAuthorityRequired = errors.New("only hotel owners can confirm or complete reservations")
)

// Access is how a principal relates to one reservation.
type Access struct {
	guest      bool
	hotelOwner bool
	admin      bool
}

func AccessFor(p auth.Principal, guestID, hotelOwnerID uuid.UUID) Access {
	return Access{
		guest:      p.ID() == guestID,
		hotelOwner: p.ID() == hotelOwnerID,
		admin:      p.IsAdmin(),
	}
}

// CanManage allows viewing, updating and cancelling.
func (a Access) CanManage() bool {
	return a.guest || a.hotelOwner || a.admin
}

func (a Access) HasHotelAuthority() bool {
	return a.hotelOwner || a.admin
}

func (a Access) authorizeStatus(next Status) error {
	if next.RequiresHotelAuthority() && !a.HasHotelAuthority() {
		return ErrHotelAuthorityRequired
	}
	return nil
}
