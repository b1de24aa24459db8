package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

// MaxPageSize caps the page size a client can ask for
const MaxPageSize = 500

var (
	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrInvalidPageSize = errors.New("pageSize must be an integer between 0 and 500")
)

// Params selects one page of a listing. A PageSize of zero returns everything.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of results together with its position in the full listing
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Apply cuts the page described by p out of items. Pages past the end are empty.
func Apply[T any](items []T, p Params) Page[T] {
	meta := p.BuildMeta(len(items))

	offset, limit := p.CalculateOffsetLimit()
	if limit == 0 {
		return Page[T]{Items: items, Meta: meta}
	}

	if offset < 0 || offset >= len(items) {
		return Page[T]{Items: []T{}, Meta: meta}
	}
	end := min(offset+limit, len(items))
	return Page[T]{Items: items[offset:end], Meta: meta}
}

// FromQuery reads page and pageSize. Missing values select the whole listing.
func FromQuery(qp url.Values) (Params, error) {
	p := Params{Page: 1}

	if v := qp.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return p, ErrInvalidPage
		}
		p.Page = page
	}

	if v := qp.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 || size > MaxPageSize {
			return p, ErrInvalidPageSize
		}
		p.PageSize = size
	}

	return p, nil
}
