package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/validation"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		999:       "999",
		600000:    "600,000",
		1234.5:    "1,234.5",
		999999999: "999,999,999",
		-1500.25:  "-1,500.25",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPrice(in), "%v", in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "ééé...", Truncate("éééééééé", 6))
}

func TestRenderProductTable(t *testing.T) {
	s := DefaultStyles()
	out := s.RenderProductTable([]models.Product{
		{ID: 1, Name: "Laptop Dell XPS", Price: 600000, Quantity: 20, Category: models.CategoryLaptop},
		{ID: 3, Name: "Canon printer", Price: 220000, Quantity: 30, Category: models.CategoryPrinter, Description: strings.Repeat("x", 50)},
	}, 0)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[2], "Laptop Dell XPS")
	assert.Contains(t, lines[2], "600,000")
	assert.Contains(t, lines[3], "Printer")
	assert.Contains(t, lines[3], strings.Repeat("x", descriptionWidth-3)+"...")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[3]))
}

func TestRenderProductTableEmpty(t *testing.T) {
	assert.Contains(t, DefaultStyles().RenderProductTable(nil, -1), "No products found.")
}

func TestRenderPager(t *testing.T) {
	s := DefaultStyles()
	assert.Contains(t, s.RenderPager(0, 0, 0), "Page 0 of 0")
	assert.Contains(t, s.RenderPager(1, 3, 25), "Page 2 of 3 (25 products)")
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "none", DescribeFilter(models.Filter{}))
	assert.Equal(t, "search=dell maxPrice=700000", DescribeFilter(models.Filter{Search: " dell ", PriceMax: "700000", QtyMin: " "}))
}

func TestRenderProductFormShowsErrors(t *testing.T) {
	out := DefaultStyles().RenderProductForm(FormView{
		Inputs:  []string{"AB", "1", "-5", "LAPTOP", ""},
		Errors:  validation.Errors{validation.FieldName: validation.MsgNameTooShort},
		Editing: true,
		EditID:  7,
	})
	assert.Contains(t, out, "Edit product #7")
	assert.Contains(t, out, validation.MsgNameTooShort)
	assert.Contains(t, out, "NETWORK_DEVICE")
}

func TestFormFieldKeysOrder(t *testing.T) {
	assert.Equal(t, []string{"name", "price", "quantity", "category", "description"}, FormFieldKeys())
}

func TestRenderLogin(t *testing.T) {
	s := DefaultStyles()
	out := s.RenderLogin(LoginView{
		Username: "admin",
		Password: "******",
		Errors:   validation.LoginErrors{Password: "Invalid username or password"},
		Loading:  true,
	})
	assert.Contains(t, out, "Invalid username or password")
	assert.Contains(t, out, "Logging in...")

	out = s.RenderLogin(LoginView{Success: "Login successful"})
	assert.Contains(t, out, "Login successful")
	assert.Contains(t, out, "[ Login ]")
}
