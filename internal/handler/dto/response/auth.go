package response

import (
	"time"

	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	HotelCount       int64     `json:"hotelCount"`
	ReservationCount int64     `json:"reservationCount"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var res UserResponse
	copyFields(&res, v)
	return res
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}
