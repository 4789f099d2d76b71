package domain

type PaginationParams struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

// Page is a window of a list endpoint that reports no total count. HasNext is
// a guess based on whether the window came back full.
type Page[T any] struct {
	Data     []T  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
}

func NewPage[T any](data []T, params PaginationParams) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:     data,
		Page:     params.Page,
		PageSize: params.PageSize,
		HasNext:  len(data) >= params.PageSize,
		HasPrev:  params.Page > 1,
	}
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:     1,
		PageSize: 30,
	}
}

func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 30
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
