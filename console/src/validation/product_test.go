package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/narender/product-console/console/src/models"
	"github.com/stretchr/testify/assert"
)

func validDraft() models.ProductDraft {
	return models.ProductDraft{
		Name:     "Laptop Dell XPS",
		Price:    "600000",
		Quantity: "20",
		Category: "LAPTOP",
	}
}

func TestValidateProductValid(t *testing.T) {
	assert.True(t, ValidateProduct(validDraft()).Valid())
}

func TestValidateProductFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProductDraft)
		field  string
		want   string
	}{
		{"negative quantity", func(d *models.ProductDraft) { d.Quantity = "-5" }, FieldQuantity, MsgQuantityNegative},
		{"quantity above max", func(d *models.ProductDraft) { d.Quantity = "100000" }, FieldQuantity, MsgQuantityTooLarge},
		{"quantity not a number", func(d *models.ProductDraft) { d.Quantity = "ABC" }, FieldQuantity, MsgQuantityInvalid},
		{"quantity fractional", func(d *models.ProductDraft) { d.Quantity = "2.5" }, FieldQuantity, MsgQuantityInvalid},
		{"quantity blank", func(d *models.ProductDraft) { d.Quantity = "" }, FieldQuantity, MsgQuantityInvalid},
		{"name empty", func(d *models.ProductDraft) { d.Name = "" }, FieldName, MsgNameRequired},
		{"name whitespace", func(d *models.ProductDraft) { d.Name = "   " }, FieldName, MsgNameRequired},
		{"name too short", func(d *models.ProductDraft) { d.Name = "AB" }, FieldName, MsgNameTooShort},
		{"name too long", func(d *models.ProductDraft) { d.Name = strings.Repeat("A", 101) }, FieldName, MsgNameTooLong},
		{"negative price", func(d *models.ProductDraft) { d.Price = "-100" }, FieldPrice, MsgPriceNegative},
		{"price above max", func(d *models.ProductDraft) { d.Price = "1000000000" }, FieldPrice, MsgPriceTooLarge},
		{"unknown category", func(d *models.ProductDraft) { d.Category = "Food" }, FieldCategory, MsgCategoryInvalid},
		{"lowercase category", func(d *models.ProductDraft) { d.Category = "laptop" }, FieldCategory, MsgCategoryInvalid},
		{"empty category", func(d *models.ProductDraft) { d.Category = "" }, FieldCategory, MsgCategoryInvalid},
		{"description too long", func(d *models.ProductDraft) { d.Description = strings.Repeat("X", 501) }, FieldDescription, MsgDescriptionTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			errs := ValidateProduct(d)
			assert.Equal(t, Errors{tt.field: tt.want}, errs)
		})
	}
}

func TestValidateProductNameTrimAsymmetry(t *testing.T) {
	d := validDraft()
	// 2 visible characters padded with spaces: too short after trimming
	d.Name = "  AB  "
	assert.Equal(t, MsgNameTooShort, ValidateProduct(d)[FieldName])

	// 98 characters plus padding: fine trimmed, too long raw
	d.Name = " " + strings.Repeat("A", 98) + "  "
	assert.Equal(t, MsgNameTooLong, ValidateProduct(d)[FieldName])
}

func TestValidateProductPriceOnlyWhenNumeric(t *testing.T) {
	for _, price := range []string{"", "abc", "  "} {
		d := validDraft()
		d.Price = price
		_, ok := ValidateProduct(d)[FieldPrice]
		assert.False(t, ok, "price %q", price)
	}
}

func TestValidateProductDescriptionTrimmed(t *testing.T) {
	d := validDraft()
	d.Description = "  " + strings.Repeat("X", 500) + "   "
	assert.True(t, ValidateProduct(d).Valid())
}

func TestValidateProductChecksAllFields(t *testing.T) {
	errs := ValidateProduct(models.ProductDraft{Quantity: "-5", Name: "AB", Price: "-1", Category: "Food"})
	want := Errors{
		FieldQuantity: MsgQuantityNegative,
		FieldName:     MsgNameTooShort,
		FieldPrice:    MsgPriceNegative,
		FieldCategory: MsgCategoryInvalid,
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("ValidateProduct() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatorsAreIdempotent(t *testing.T) {
	d := models.ProductDraft{Quantity: "100000", Name: strings.Repeat("A", 101), Category: "Food"}
	assert.Equal(t, ValidateProduct(d), ValidateProduct(d))
	assert.Equal(t, ValidateLoginForm("ab", "abcdef"), ValidateLoginForm("ab", "abcdef"))
}

func TestValidateProductValue(t *testing.T) {
	p := models.Product{Name: "Canon printer", Price: 220000, Quantity: 30, Category: models.CategoryPrinter}
	assert.True(t, ValidateProductValue(p).Valid())

	p.Quantity = -1
	assert.Equal(t, Errors{FieldQuantity: MsgQuantityNegative}, ValidateProductValue(p))
}
