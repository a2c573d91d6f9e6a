package converter

import (
	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/domain/user"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
)

func HotelToCreateParams(h *hotel.Hotel) sqlc.CreateHotelParams {
	d := h.Details()
	return sqlc.CreateHotelParams{
		ID:          h.ID(),
		OwnerID:     h.OwnerID(),
		Name:        d.Name,
		Slug:        h.Slug(),
		Description: d.Description,
		Address:     d.Location.Address,
		City:        d.Location.City,
		Country:     d.Location.Country,
		Images:      nonNil(d.Images),
		Amenities:   nonNil(d.Amenities),
		Rating:      d.Rating,
	}
}

func HotelToUpdateParams(h *hotel.Hotel) sqlc.UpdateHotelParams {
	d := h.Details()
	return sqlc.UpdateHotelParams{
		ID:          h.ID(),
		Name:        d.Name,
		Slug:        h.Slug(),
		Description: d.Description,
		Address:     d.Location.Address,
		City:        d.Location.City,
		Country:     d.Location.Country,
		Images:      nonNil(d.Images),
		Amenities:   nonNil(d.Amenities),
		Rating:      d.Rating,
	}
}

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	d := r.Details()
	return sqlc.CreateRoomParams{
		ID:                 r.ID(),
		HotelID:            r.HotelID(),
		Name:               d.Name,
		Description:        d.Description,
		RoomType:           d.Type.String(),
		PricePerNightCents: d.PricePerNight.Cents(),
		Capacity:           int32(d.Capacity),
		Images:             nonNil(d.Images),
		Amenities:          nonNil(d.Amenities),
		IsAvailable:        d.IsAvailable,
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	d := r.Details()
	return sqlc.UpdateRoomParams{
		ID:                 r.ID(),
		Name:               d.Name,
		Description:        d.Description,
		RoomType:           d.Type.String(),
		PricePerNightCents: d.PricePerNight.Cents(),
		Capacity:           int32(d.Capacity),
		Images:             nonNil(d.Images),
		Amenities:          nonNil(d.Amenities),
		IsAvailable:        d.IsAvailable,
	}
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		Role:         u.Role().String(),
	}
}

// nonNil keeps TEXT[] NOT NULL columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
