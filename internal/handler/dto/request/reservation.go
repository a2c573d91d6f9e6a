package request

import (
	"time"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var errInvalidDate = errs.Invalid("invalid date")

type CreateReservationRequest struct {
	RoomID          uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate     string    `json:"checkInDate" binding:"required,isodate"`
	CheckOutDate    string    `json:"checkOutDate" binding:"required,isodate"`
	GuestCount      int       `json:"guestCount" binding:"required,min=1"`
	SpecialRequests *string   `json:"specialRequests" binding:"omitempty,max=1000"`
}

func (r *CreateReservationRequest) ToCommand() (commands.CreateReservationRequest, error) {
	checkIn, err := ParseDate(r.CheckInDate)
	if err != nil {
		return commands.CreateReservationRequest{}, errInvalidDate
	}
	checkOut, err := ParseDate(r.CheckOutDate)
	if err != nil {
		return commands.CreateReservationRequest{}, errInvalidDate
	}
	return commands.CreateReservationRequest{
		RoomID:          r.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestCount:      r.GuestCount,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

type UpdateReservationRequest struct {
	Status          *string `json:"status" binding:"omitempty,reservationstatus"`
	CheckInDate     *string `json:"checkInDate" binding:"omitempty,isodate"`
	CheckOutDate    *string `json:"checkOutDate" binding:"omitempty,isodate"`
	GuestCount      *int    `json:"guestCount" binding:"omitempty,min=1"`
	SpecialRequests *string `json:"specialRequests" binding:"omitempty,max=1000"`
}

func (r *UpdateReservationRequest) ToPatch() (reservation.Patch, error) {
	p := reservation.Patch{
		GuestCount:      r.GuestCount,
		SpecialRequests: r.SpecialRequests,
	}
	if r.Status != nil {
		status, err := reservation.ParseStatus(*r.Status)
		if err != nil {
			return reservation.Patch{}, errs.Mark(err, errs.ErrInvalidRequest)
		}
		p.Status = &status
	}

	var err error
	if p.CheckIn, err = parseOptionalDate(r.CheckInDate); err != nil {
		return reservation.Patch{}, errInvalidDate
	}
	if p.CheckOut, err = parseOptionalDate(r.CheckOutDate); err != nil {
		return reservation.Patch{}, errInvalidDate
	}
	return p, nil
}

type ReservationListQuery struct {
	PageQuery
	Status   string `form:"status" binding:"omitempty,reservationstatus"`
	FromDate string `form:"fromDate" binding:"omitempty,isodate"`
	ToDate   string `form:"toDate" binding:"omitempty,isodate"`
	HotelID  string `form:"hotelId" binding:"omitempty,uuid"`
	RoomID   string `form:"roomId" binding:"omitempty,uuid"`
}

// ToFilter maps the query onto filter predicates. Ownership predicates are
// added by the query layer.
func (q *ReservationListQuery) ToFilter() queries.ReservationFilter {
	var preds []queries.ReservationPredicate
	if q.Status != "" {
		preds = append(preds, queries.ReservationStatusIs(reservation.Status(q.Status)))
	}
	if t, err := ParseDate(q.FromDate); err == nil {
		preds = append(preds, queries.CheckInFrom(t))
	}
	if t, err := ParseDate(q.ToDate); err == nil {
		preds = append(preds, queries.CheckOutUntil(t))
	}
	if id, err := uuid.Parse(q.HotelID); err == nil {
		preds = append(preds, queries.ReservationsInHotel(id))
	}
	if id, err := uuid.Parse(q.RoomID); err == nil {
		preds = append(preds, queries.ReservationsForRoom(id))
	}
	return queries.NewReservationFilter(preds...)
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"omitempty,isodate"`
	CheckOut string `form:"checkOut" binding:"omitempty,isodate"`
}

func (q *AvailabilityQuery) Dates() (checkIn, checkOut *time.Time) {
	checkIn, _ = parseOptionalDate(&q.CheckIn)
	checkOut, _ = parseOptionalDate(&q.CheckOut)
	return checkIn, checkOut
}
