package request

import "luxstay-api/internal/usecase/queries"

// PageQuery is embedded by every list query.
type PageQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

func (q PageQuery) ToPageRequest(spec queries.SortSpec) queries.PageRequest {
	return queries.NewPageRequest(q.Page, q.Limit, q.SortBy, q.SortOrder, spec)
}
