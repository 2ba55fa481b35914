package validation

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/narender/product-console/console/src/models"
)

// Field keys in Errors.
const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldCategory    = "category"
	FieldDescription = "description"
)

const (
	nameMinLen        = 3
	nameMaxLen        = 100
	descriptionMaxLen = 500
	maxQuantity       = 99999
	maxPrice          = 999999999
)

const (
	MsgQuantityInvalid    = "Quantity must be a valid integer"
	MsgQuantityNegative   = "Quantity must not be below 0"
	MsgQuantityTooLarge   = "Quantity must not exceed 99,999"
	MsgNameRequired       = "Product name is required"
	MsgNameTooShort       = "Product name must be at least 3 characters"
	MsgNameTooLong        = "Product name must not exceed 100 characters"
	MsgPriceNegative      = "Price must not be below 0"
	MsgPriceTooLarge      = "Price must not exceed 999,999,999"
	MsgCategoryInvalid    = "Invalid product category"
	MsgDescriptionTooLong = "Description must not exceed 500 characters"
)

// Errors maps a field key to its message. A missing key means the field is
// valid; an empty map means the whole product is.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// ValidateProduct checks every field of the draft independently.
func ValidateProduct(d models.ProductDraft) Errors {
	errs := Errors{}

	if msg := validateQuantity(d.Quantity); msg != "" {
		errs[FieldQuantity] = msg
	}
	if msg := validateName(d.Name); msg != "" {
		errs[FieldName] = msg
	}
	if msg := validatePrice(d.Price); msg != "" {
		errs[FieldPrice] = msg
	}
	if !models.Category(d.Category).Valid() {
		errs[FieldCategory] = MsgCategoryInvalid
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Description)) > descriptionMaxLen {
		errs[FieldDescription] = MsgDescriptionTooLong
	}
	return errs
}

// ValidateProductValue validates an already typed product through its draft.
func ValidateProductValue(p models.Product) Errors {
	return ValidateProduct(models.DraftFromProduct(p))
}

func validateQuantity(raw string) string {
	v, ok := models.ParseNumber(raw)
	if !ok || v != math.Trunc(v) {
		return MsgQuantityInvalid
	}
	switch {
	case v < 0:
		return MsgQuantityNegative
	case v > maxQuantity:
		return MsgQuantityTooLarge
	}
	return ""
}

// The minimum applies to the trimmed name, the maximum to the raw one.
func validateName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return MsgNameRequired
	case utf8.RuneCountInString(trimmed) < nameMinLen:
		return MsgNameTooShort
	case utf8.RuneCountInString(raw) > nameMaxLen:
		return MsgNameTooLong
	}
	return ""
}

// Price is only range checked when it parses; blank or non-numeric text
// passes here.
func validatePrice(raw string) string {
	v, ok := models.ParseNumber(raw)
	if !ok {
		return ""
	}
	switch {
	case v < 0:
		return MsgPriceNegative
	case v > maxPrice:
		return MsgPriceTooLarge
	}
	return ""
}
