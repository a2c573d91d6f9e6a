package queries

import "slices"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortSpec is the closed set of sort keys a list accepts.
type SortSpec struct {
	Keys         []string
	DefaultKey   string
	DefaultOrder SortOrder
}

var (
	ReservationSort = SortSpec{
		Keys:         []string{"checkInDate", "checkOutDate", "totalPrice", "status", "createdAt"},
		DefaultKey:   "createdAt",
		DefaultOrder: SortAsc,
	}
	HotelSort = SortSpec{
		Keys:         []string{"name", "rating", "createdAt"},
		DefaultKey:   "createdAt",
		DefaultOrder: SortAsc,
	}
	RoomSort = SortSpec{
		Keys:         []string{"pricePerNight", "capacity", "name", "createdAt"},
		DefaultKey:   "pricePerNight",
		DefaultOrder: SortAsc,
	}
)

type PageRequest struct {
	Page   int
	Limit  int
	SortBy string
	Order  SortOrder
}

// NewPageRequest clamps page to >= 1 and limit to 1..MaxLimit. Unknown sort
// keys and orders fall back to the list defaults.
func NewPageRequest(page, limit int, sortBy, order string, spec SortSpec) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if !slices.Contains(spec.Keys, sortBy) {
		sortBy = spec.DefaultKey
	}
	o := SortOrder(order)
	if o != SortAsc && o != SortDesc {
		o = spec.DefaultOrder
	}
	return PageRequest{Page: page, Limit: limit, SortBy: sortBy, Order: o}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p PageRequest) Desc() bool {
	return p.Order == SortDesc
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: req.Page, Limit: req.Limit}
}

func (p *Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

func (p *Page[T]) HasPrev() bool {
	return p.Page > 1
}
