package request

import (
	"luxstay-api/internal/domain/hotel"
	"luxstay-api/internal/usecase/commands"
	"luxstay-api/internal/usecase/queries"
)

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required,min=1"`
	Description string   `json:"description" binding:"required,min=10"`
	Address     string   `json:"address" binding:"required,min=1"`
	City        string   `json:"city" binding:"required,min=1"`
	Country     string   `json:"country" binding:"required,min=1"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
	Amenities   []string `json:"amenities"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

func (r *CreateHotelRequest) ToDetails() hotel.Details {
	d := hotel.Details{
		Name:        r.Name,
		Description: r.Description,
		Location:    hotel.Location{Address: r.Address, City: r.City, Country: r.Country},
		Images:      r.Images,
		Amenities:   r.Amenities,
	}
	if r.Rating != nil {
		d.Rating = *r.Rating
	}
	return d
}

type UpdateHotelRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=10"`
	Address     *string   `json:"address" binding:"omitempty,min=1"`
	City        *string   `json:"city" binding:"omitempty,min=1"`
	Country     *string   `json:"country" binding:"omitempty,min=1"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	Amenities   *[]string `json:"amenities"`
	Rating      *float64  `json:"rating" binding:"omitempty,min=0,max=5"`
}

func (r *UpdateHotelRequest) ToPatch() commands.HotelPatch {
	return commands.HotelPatch{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		Images:      r.Images,
		Amenities:   r.Amenities,
		Rating:      r.Rating,
	}
}

type HotelListQuery struct {
	PageQuery
	Search    string   `form:"search"`
	City      string   `form:"city"`
	Country   string   `form:"country"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
}

func (q *HotelListQuery) ToFilter() queries.HotelFilter {
	var preds []queries.HotelPredicate
	if q.Search != "" {
		preds = append(preds, queries.HotelSearch(q.Search))
	}
	if q.City != "" {
		preds = append(preds, queries.HotelCityContains(q.City))
	}
	if q.Country != "" {
		preds = append(preds, queries.HotelCountryContains(q.Country))
	}
	if q.MinRating != nil {
		preds = append(preds, queries.HotelMinRating(*q.MinRating))
	}
	return queries.NewHotelFilter(preds...)
}
