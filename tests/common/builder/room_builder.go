//go:build unit || e2e

package builder

import (
	"time"

	"luxstay-api/internal/domain/money"
	"luxstay-api/internal/domain/room"
	reqdto "luxstay-api/internal/handler/dto/request"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	HotelOwnerID       uuid.UUID
	Name               string
	Description        string
	Type               room.Type
	PricePerNightCents int64
	Capacity           int
	Images             []string
	Amenities          []string
	IsAvailable        bool
	CreatedAt          time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		HotelOwnerID:       uuid.New(),
		Name:               "Deluxe Double",
		Description:        "Double room with a balcony",
		Type:               room.TypeDouble,
		PricePerNightCents: 12000,
		Capacity:           2,
		Images:             []string{},
		Amenities:          []string{"wifi"},
		IsAvailable:        true,
		CreatedAt:          time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) PricePerNight() money.Money {
	m, _ := money.FromCents(r.PricePerNightCents)
	return m
}

// Build methods
func (r *RoomBuilder) BuildDetails() room.Details {
	return room.Details{
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		PricePerNight: r.PricePerNight(),
		Capacity:      r.Capacity,
		Images:        r.Images,
		Amenities:     r.Amenities,
		IsAvailable:   r.IsAvailable,
	}
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.HotelID, r.BuildDetails())
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		HotelOwnerID:       r.HotelOwnerID,
		Name:               r.Name,
		Description:        r.Description,
		RoomType:           r.Type.String(),
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           r.Capacity,
		Images:             r.Images,
		Amenities:          r.Amenities,
		IsAvailable:        r.IsAvailable,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.CreatedAt,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Name:               r.Name,
		Description:        r.Description,
		RoomType:           r.Type.String(),
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           r.Capacity,
		Images:             r.Images,
		Amenities:          r.Amenities,
		IsAvailable:        r.IsAvailable,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.CreatedAt,
		Hotel: queries.RoomHotelSummary{
			ID:      r.HotelID,
			Name:    "Grand Plaza",
			Address: "Rua Augusta 100",
			City:    "Lisbon",
			Country: "Portugal",
			OwnerID: r.HotelOwnerID,
		},
	}
}

func (r *RoomBuilder) BuildInfra() sqlc.GetRoomByIDRow {
	return sqlc.GetRoomByIDRow{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Name:               r.Name,
		Description:        r.Description,
		RoomType:           r.Type.String(),
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           int32(r.Capacity),
		Images:             r.Images,
		Amenities:          r.Amenities,
		IsAvailable:        r.IsAvailable,
		CreatedAt:          pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		HotelName:          "Grand Plaza",
		HotelAddress:       "Rua Augusta 100",
		HotelCity:          "Lisbon",
		HotelCountry:       "Portugal",
		HotelOwnerID:       r.HotelOwnerID,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	available := r.IsAvailable
	return reqdto.CreateRoomRequest{
		HotelID:       r.HotelID,
		Name:          r.Name,
		Description:   r.Description,
		RoomType:      r.Type.String(),
		PricePerNight: r.PricePerNight().Decimal(),
		Capacity:      r.Capacity,
		Images:        r.Images,
		Amenities:     r.Amenities,
		IsAvailable:   &available,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithHotel(hotelID, ownerID uuid.UUID) *RoomBuilder {
	r.HotelID = hotelID
	r.HotelOwnerID = ownerID
	return r
}

func (r *RoomBuilder) AsUnavailable() *RoomBuilder {
	r.IsAvailable = false
	return r
}
