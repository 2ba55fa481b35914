package models

import (
	"strings"

	apirequests "github.com/narender/product-console/common/apirequests"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Catalog is the document persisted in the data file.
type Catalog struct {
	NextID   int64     `json:"nextId"`
	Products []Product `json:"products"`
}

// ProductFromRequest copies a validated request body into a Product
// without an id.
func ProductFromRequest(req apirequests.ProductRequest) Product {
	return Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
	}
}

// ProductFilter narrows a listing. Nil bounds and empty strings match
// everything.
type ProductFilter struct {
	Search      string
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	MaxQuantity *int
}

func FilterFromRequest(req apirequests.ProductFilterRequest) ProductFilter {
	return ProductFilter{
		Search:      strings.TrimSpace(req.Search),
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
	}
}

// Matches reports whether p satisfies every set criterion. Search is a
// case-insensitive substring match on the name.
func (f ProductFilter) Matches(p Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinQuantity != nil && p.Quantity < *f.MinQuantity {
		return false
	}
	if f.MaxQuantity != nil && p.Quantity > *f.MaxQuantity {
		return false
	}
	return true
}
