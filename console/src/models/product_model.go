package models

import (
	"math"
	"strconv"
	"strings"
)

type Product struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// ProductDraft is the product form as typed: every field is raw text.
type ProductDraft struct {
	Name        string
	Price       string
	Quantity    string
	Category    string
	Description string
}

// NewDraft returns a blank form: zero price and quantity, default category.
func NewDraft() ProductDraft {
	return ProductDraft{Price: "0", Quantity: "0", Category: string(DefaultCategory())}
}

// DraftFromProduct preloads the form with an existing product.
func DraftFromProduct(p Product) ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Quantity:    strconv.Itoa(p.Quantity),
		Category:    string(p.Category),
		Description: p.Description,
	}
}

// ParseNumber parses trimmed text as a finite number.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseInteger parses trimmed text as an integral number. "12", "12.0" and
// "1e3" qualify; "12.5" and "abc" do not.
func ParseInteger(s string) (int64, bool) {
	v, ok := ParseNumber(s)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int64(v), true
}

// Product converts the draft. Call it only after validation passed.
// Validation skips price text that is not a finite number, so a blank,
// non-numeric or overflowing price ("", "abc", "1e309") is sent as 0.
func (d ProductDraft) Product() Product {
	price, _ := ParseNumber(d.Price)
	qty, _ := ParseInteger(d.Quantity)
	return Product{
		Name:        strings.TrimSpace(d.Name),
		Price:       price,
		Quantity:    int(qty),
		Category:    Category(d.Category),
		Description: strings.TrimSpace(d.Description),
	}
}
