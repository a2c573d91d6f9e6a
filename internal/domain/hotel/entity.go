package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrNameRequired        = errors.New("hotel name is required")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrAddressRequired     = errors.New("address, city and country are required")
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
)

const (
	MinDescriptionLength = 10
	MaxRating            = 5.0
)

type Location struct {
	Address string
	City    string
	Country string
}

func (l Location) validate() error {
	if strings.TrimSpace(l.Address) == "" || strings.TrimSpace(l.City) == "" || strings.TrimSpace(l.Country) == "" {
		return ErrAddressRequired
	}
	return nil
}

type Details struct {
	Name        string
	Description string
	Location    Location
	Images      []string
	Amenities   []string
	Rating      float64
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if len([]rune(strings.TrimSpace(d.Description))) < MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	if err := d.Location.validate(); err != nil {
		return err
	}
	if d.Rating < 0 || d.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type Hotel struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	slug      string
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(ownerID uuid.UUID, details Details) (*Hotel, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Hotel{
		id:      id,
		ownerID: ownerID,
		slug:    MakeSlug(details.Name, id),
		details: normalize(details),
	}, nil
}

func ReconstructHotel(id, ownerID uuid.UUID, slugValue string, details Details, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		ownerID:   ownerID,
		slug:      slugValue,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces the hotel details. The slug follows the name.
func (h *Hotel) Revise(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	if details.Name != h.details.Name {
		h.slug = MakeSlug(details.Name, h.id)
	}
	h.details = normalize(details)
	return nil
}

// MakeSlug builds a URL slug from the name, suffixed with the id prefix to stay unique.
func MakeSlug(name string, id uuid.UUID) string {
	return slug.Make(name) + "-" + id.String()[:8]
}

func normalize(d Details) Details {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Amenities == nil {
		d.Amenities = []string{}
	}
	return d
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) OwnerID() uuid.UUID   { return h.ownerID }
func (h *Hotel) Slug() string         { return h.slug }
func (h *Hotel) Details() Details     { return h.details }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
