package service

// PageQuery is the shared pagination input of every list endpoint.
type PageQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// Normalize clamps page to >=1 and limit to 1..100 (default 20).
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	return q
}

func (q PageQuery) Offset() int { return (q.Page - 1) * q.Limit }

// PageInfo is the pagination envelope returned alongside list data.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPageInfo(q PageQuery, total int64) PageInfo {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return PageInfo{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    q.Page < pages,
		HasPrev:    q.Page > 1 && total > 0,
	}
}

// Paged pairs one page of rows with its envelope.
type Paged[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageInfo `json:"pagination"`
}

func NewPaged[T any](items []T, q PageQuery, total int64) *Paged[T] {
	if items == nil {
		items = []T{}
	}
	return &Paged[T]{Data: items, Pagination: NewPageInfo(q, total)}
}
