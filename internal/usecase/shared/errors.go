package shared

import (
	"luxstay-api/internal/infra"
	"luxstay-api/internal/pkg/errs"
)

var (
	ErrRoomNotFound        = errs.NotFound("room not found")
	ErrHotelNotFound       = errs.NotFound("hotel not found")
	ErrReservationNotFound = errs.NotFound("reservation not found")
	ErrUserNotFound        = errs.NotFound("user not found")
)

// NotFoundAs replaces a repository not-found error with notFound and passes
// any other error through.
func NotFoundAs(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
