package response

import "luxstay-api/internal/usecase/queries"

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

func NewPaginated[V, T any](page *queries.Page[V], convert func(V) T) PaginatedResponse[T] {
	data := make([]T, len(page.Items))
	for i, item := range page.Items {
		data[i] = convert(item)
	}
	return PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
			HasNext:    page.HasNext(),
			HasPrev:    page.HasPrev(),
		},
	}
}
