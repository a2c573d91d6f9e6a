package response

import (
	"time"

	"luxstay-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomHotelResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Country string    `json:"country"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type RoomResponse struct {
	ID            uuid.UUID          `json:"id"`
	HotelID       uuid.UUID          `json:"hotelId"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	RoomType      string             `json:"roomType"`
	PricePerNight float64            `json:"pricePerNight" copier:"-"`
	Capacity      int                `json:"capacity"`
	Images        []string           `json:"images"`
	Amenities     []string           `json:"amenities"`
	IsAvailable   bool               `json:"isAvailable"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Hotel         *RoomHotelResponse `json:"hotel,omitempty" copier:"-"`
}

func FromRoomView(v *queries.RoomView) RoomResponse {
	res := fromRoomFields(v)
	res.Hotel = &RoomHotelResponse{}
	copyFields(res.Hotel, &v.Hotel)
	return res
}

// fromRoomFields maps a room without its hotel, for rooms nested in a hotel.
func fromRoomFields(v *queries.RoomView) RoomResponse {
	var res RoomResponse
	copyFields(&res, v)
	res.PricePerNight = centsToDecimal(v.PricePerNightCents)
	if res.Images == nil {
		res.Images = []string{}
	}
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	return res
}

type RoomEnvelope struct {
	Room RoomResponse `json:"room"`
}

type RoomMessageResponse struct {
	Message string       `json:"message"`
	Room    RoomResponse `json:"room"`
}
