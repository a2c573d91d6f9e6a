package response

import (
	"time"

	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelOwnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type HotelResponse struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"ownerId"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Country     string             `json:"country"`
	Images      []string           `json:"images"`
	Amenities   []string           `json:"amenities"`
	Rating      float64            `json:"rating"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Owner       HotelOwnerResponse `json:"owner" copier:"-"`
	Rooms       []RoomResponse     `json:"rooms" copier:"-"`
}

func FromHotelView(v *queries.HotelView) HotelResponse {
	var res HotelResponse
	copyFields(&res, v)
	copyFields(&res.Owner, &v.Owner)
	res.Rooms = make([]RoomResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		res.Rooms[i] = fromRoomFields(r)
	}
	return res
}

type HotelListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Images      []string  `json:"images"`
	Amenities   []string  `json:"amenities"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	RoomCount   int64     `json:"roomCount"`
	MinPrice    *float64  `json:"minPrice" copier:"-"`
}

func FromHotelListItem(v *queries.HotelListItem) HotelListItemResponse {
	var res HotelListItemResponse
	copyFields(&res, v)
	if v.MinPriceCents != nil {
		p := centsToDecimal(*v.MinPriceCents)
		res.MinPrice = &p
	}
	return res
}

type HotelEnvelope struct {
	Hotel HotelResponse `json:"hotel"`
}

type HotelMessageResponse struct {
	Message string        `json:"message"`
	Hotel   HotelResponse `json:"hotel"`
}
