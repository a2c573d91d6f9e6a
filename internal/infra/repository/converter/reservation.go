package converter

import (
	"luxstay-api/internal/domain/reservation"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	period := res.Period()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		UserID:          res.UserID(),
		CheckInDate:     pgconv.TimeToPgtype(period.CheckIn()),
		CheckOutDate:    pgconv.TimeToPgtype(period.CheckOut()),
		GuestCount:      int32(res.GuestCount()),
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		SpecialRequests: pgconv.StringPtrToPgtype(res.SpecialRequests().Ptr()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	period := res.Period()
	return sqlc.UpdateReservationParams{
		ID:              res.ID(),
		CheckInDate:     pgconv.TimeToPgtype(period.CheckIn()),
		CheckOutDate:    pgconv.TimeToPgtype(period.CheckOut()),
		GuestCount:      int32(res.GuestCount()),
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		SpecialRequests: pgconv.StringPtrToPgtype(res.SpecialRequests().Ptr()),
	}
}
