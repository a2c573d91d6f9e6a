package request

import (
	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/room"
	"luxstay-api/internal/pkg/errs"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID       uuid.UUID `json:"hotelId" binding:"required"`
	Name          string    `json:"name" binding:"required,min=1"`
	Description   string    `json:"description" binding:"required,min=10"`
	RoomType      string    `json:"roomType" binding:"required,roomtype"`
	PricePerNight float64   `json:"pricePerNight" binding:"required,gt=0"`
	Capacity      int       `json:"capacity" binding:"required,min=1"`
	Images        []string  `json:"images" binding:"omitempty,dive,url"`
	Amenities     []string  `json:"amenities"`
	IsAvailable   *bool     `json:"isAvailable"`
}

func (r *CreateRoomRequest) ToDetails() (room.Details, error) {
	price, err := money.FromDecimal(r.PricePerNight)
	if err != nil {
		return room.Details{}, errs.Mark(err, errs.ErrInvalidRequest)
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return room.Details{
		Name:          r.Name,
		Description:   r.Description,
		Type:          room.Type(r.RoomType),
		PricePerNight: price,
		Capacity:      r.Capacity,
		Images:        r.Images,
		Amenities:     r.Amenities,
		IsAvailable:   available,
	}, nil
}

type UpdateRoomRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1"`
	Description   *string   `json:"description" binding:"omitempty,min=10"`
	RoomType      *string   `json:"roomType" binding:"omitempty,roomtype"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1"`
	Images        *[]string `json:"images" binding:"omitempty,dive,url"`
	Amenities     *[]string `json:"amenities"`
	IsAvailable   *bool     `json:"isAvailable"`
}

func (r *UpdateRoomRequest) ToPatch() (commands.RoomPatch, error) {
	p := commands.RoomPatch{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Images:      r.Images,
		Amenities:   r.Amenities,
		IsAvailable: r.IsAvailable,
	}
	if r.RoomType != nil {
		t, err := room.NewType(*r.RoomType)
		if err != nil {
			return commands.RoomPatch{}, errs.Mark(err, errs.ErrInvalidRequest)
		}
		p.Type = &t
	}
	if r.PricePerNight != nil {
		price, err := money.FromDecimal(*r.PricePerNight)
		if err != nil {
			return commands.RoomPatch{}, errs.Mark(err, errs.ErrInvalidRequest)
		}
		p.PricePerNight = &price
	}
	return p, nil
}

type RoomListQuery struct {
	PageQuery
	Search      string   `form:"search"`
	HotelID     string   `form:"hotelId" binding:"omitempty,uuid"`
	RoomType    string   `form:"roomType" binding:"omitempty,roomtype"`
	MinPrice    *float64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice    *float64 `form:"maxPrice" binding:"omitempty,min=0"`
	MinCapacity *int     `form:"minCapacity" binding:"omitempty,min=1"`
	IsAvailable *bool    `form:"isAvailable"`
}

func (q *RoomListQuery) ToFilter() queries.RoomFilter {
	var preds []queries.RoomPredicate
	if q.Search != "" {
		preds = append(preds, queries.RoomSearch(q.Search))
	}
	if id, err := uuid.Parse(q.HotelID); err == nil {
		preds = append(preds, queries.RoomsInHotel(id))
	}
	if q.RoomType != "" {
		preds = append(preds, queries.RoomTypeIs(room.Type(q.RoomType)))
	}
	if q.MinPrice != nil {
		if m, err := money.FromDecimal(*q.MinPrice); err == nil {
			preds = append(preds, queries.RoomMinPrice(m))
		}
	}
	if q.MaxPrice != nil {
		if m, err := money.FromDecimal(*q.MaxPrice); err == nil {
			preds = append(preds, queries.RoomMaxPrice(m))
		}
	}
	if q.MinCapacity != nil {
		preds = append(preds, queries.RoomMinCapacity(*q.MinCapacity))
	}
	if q.IsAvailable != nil {
		preds = append(preds, queries.RoomAvailableIs(*q.IsAvailable))
	}
	return queries.NewRoomFilter(preds...)
}
