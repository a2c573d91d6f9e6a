//go:build unit || e2e

package builder

import (
	"time"

	"luxstay-api/internal/domain/hotel"
	reqdto "luxstay-api/internal/handler/dto/request"
	sqlc "luxstay-api/internal/infra/sqlc/generated"
	"luxstay-api/internal/usecase/queries"
	"luxstay-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Address     string
	City        string
	Country     string
	Images      []string
	Amenities   []string
	Rating      float64
	CreatedAt   time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Grand Plaza",
		Description: "A quiet hotel close to the old town",
		Address:     "Rua Augusta 100",
		City:        "Lisbon",
		Country:     "Portugal",
		Images:      []string{"https://img.example.com/plaza.jpg"},
		Amenities:   []string{"wifi", "pool"},
		Rating:      4.5,
		CreatedAt:   time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

// Build methods
func (h *HotelBuilder) BuildDetails() hotel.Details {
	return hotel.Details{
		Name:        h.Name,
		Description: h.Description,
		Location:    hotel.Location{Address: h.Address, City: h.City, Country: h.Country},
		Images:      h.Images,
		Amenities:   h.Amenities,
		Rating:      h.Rating,
	}
}

func (h *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(h.OwnerID, h.BuildDetails())
}

func (h *HotelBuilder) Slug() string {
	return hotel.MakeSlug(h.Name, h.ID)
}

func (h *HotelBuilder) BuildSnapshot() *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Name:        h.Name,
		Slug:        h.Slug(),
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Rating:      h.Rating,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.CreatedAt,
	}
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:          h.ID,
		OwnerID:     h.OwnerID,
		Name:        h.Name,
		Slug:        h.Slug(),
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Rating:      h.Rating,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.CreatedAt,
		Owner: queries.HotelOwnerSummary{
			ID:        h.OwnerID,
			Email:     "owner@example.com",
			FirstName: "Olga",
			LastName:  "Owner",
		},
		Rooms: []*queries.RoomView{},
	}
}

func (h *HotelBuilder) BuildListItem() *queries.HotelListItem {
	minPrice := int64(8000)
	return &queries.HotelListItem{
		ID:            h.ID,
		OwnerID:       h.OwnerID,
		Name:          h.Name,
		Slug:          h.Slug(),
		Description:   h.Description,
		Address:       h.Address,
		City:          h.City,
		Country:       h.Country,
		Images:        h.Images,
		Amenities:     h.Amenities,
		Rating:        h.Rating,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.CreatedAt,
		RoomCount:     2,
		MinPriceCents: &minPrice,
	}
}

func (h *HotelBuilder) BuildInfra() sqlc.GetHotelByIDRow {
	return sqlc.GetHotelByIDRow{
		ID:             h.ID,
		OwnerID:        h.OwnerID,
		Name:           h.Name,
		Slug:           h.Slug(),
		Description:    h.Description,
		Address:        h.Address,
		City:           h.City,
		Country:        h.Country,
		Images:         h.Images,
		Amenities:      h.Amenities,
		Rating:         h.Rating,
		CreatedAt:      pgtype.Timestamptz{Time: h.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: h.CreatedAt, Valid: true},
		OwnerEmail:     "owner@example.com",
		OwnerFirstName: "Olga",
		OwnerLastName:  "Owner",
	}
}

func (h *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	rating := h.Rating
	return reqdto.CreateHotelRequest{
		Name:        h.Name,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Images:      h.Images,
		Amenities:   h.Amenities,
		Rating:      &rating,
	}
}

// Fluent builder methods
func (h *HotelBuilder) WithOwner(ownerID uuid.UUID) *HotelBuilder {
	h.OwnerID = ownerID
	return h
}

func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}
