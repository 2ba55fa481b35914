package models

import "strings"

// Filter holds the dashboard's search fields as typed. Empty means "not set".
type Filter struct {
	Search   string
	PriceMin string
	PriceMax string
	QtyMin   string
	QtyMax   string
	Category string
}

// IsZero reports whether no field is set.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Search) == "" &&
		strings.TrimSpace(f.PriceMin) == "" &&
		strings.TrimSpace(f.PriceMax) == "" &&
		strings.TrimSpace(f.QtyMin) == "" &&
		strings.TrimSpace(f.QtyMax) == "" &&
		strings.TrimSpace(f.Category) == ""
}

// PageQuery is one list request: page index, page size and the applied filter.
type PageQuery struct {
	Page   int
	Size   int
	Filter Filter
}

// ProductPage is a normalized listing response.
type ProductPage struct {
	Items         []Product
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}
