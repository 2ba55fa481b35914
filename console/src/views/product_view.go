package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/validation"
	"github.com/samber/lo"
)

var tableHeaders = []string{"ID", "Name", "Price", "Qty", "Category", "Description"}

const descriptionWidth = 32

func productRow(p models.Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		FormatPrice(p.Price),
		strconv.Itoa(p.Quantity),
		p.Category.Label(),
		Truncate(p.Description, descriptionWidth),
	}
}

// RenderProductTable draws products as a table. selected is the highlighted
// row index, or -1 for none.
func (s Styles) RenderProductTable(products []models.Product, selected int) string {
	if len(products) == 0 {
		return s.Muted.Render("No products found.")
	}

	rows := lo.Map(products, func(p models.Product, _ int) []string { return productRow(p) })

	widths := lo.Map(tableHeaders, func(h string, _ int) int { return lipgloss.Width(h) })
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	renderRow := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, renderRow(tableHeaders, s.Header))
	lines = append(lines, s.Muted.Render(strings.Repeat("-", lo.Sum(widths))))
	for i, row := range rows {
		style := lo.Ternary(i == selected, s.Selected, s.Cell)
		lines = append(lines, renderRow(row, style))
	}
	return strings.Join(lines, "\n")
}

// RenderPager shows the 1-based page position and the total count.
func (s Styles) RenderPager(page, totalPages int, totalElements int64) string {
	if totalPages == 0 {
		return s.Muted.Render("Page 0 of 0")
	}
	return s.Muted.Render(fmt.Sprintf("Page %d of %d (%d products)", page+1, totalPages, totalElements))
}

// FilterView carries the rendered filter inputs in display order: search,
// category, min price, max price, min quantity, max quantity.
type FilterView struct {
	Inputs  []string
	Applied models.Filter
}

var filterLabels = []string{"Search", "Category", "Min price", "Max price", "Min qty", "Max qty"}

func (s Styles) RenderFilters(v FilterView) string {
	parts := make([]string, 0, len(v.Inputs))
	for i, in := range v.Inputs {
		if i >= len(filterLabels) {
			break
		}
		parts = append(parts, s.Label.Render(filterLabels[i]+": ")+in)
	}
	out := strings.Join(parts, "\n")
	if !v.Applied.IsZero() {
		out += "\n" + s.Muted.Render("applied: "+DescribeFilter(v.Applied))
	}
	return out
}

// DescribeFilter lists the set filter fields as key=value pairs.
func DescribeFilter(f models.Filter) string {
	pairs := []lo.Tuple2[string, string]{
		lo.T2("search", f.Search),
		lo.T2("category", f.Category),
		lo.T2("minPrice", f.PriceMin),
		lo.T2("maxPrice", f.PriceMax),
		lo.T2("minQuantity", f.QtyMin),
		lo.T2("maxQuantity", f.QtyMax),
	}
	set := lo.FilterMap(pairs, func(p lo.Tuple2[string, string], _ int) (string, bool) {
		v := strings.TrimSpace(p.B)
		return p.A + "=" + v, v != ""
	})
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, " ")
}

// FormView is the product form. Inputs are rendered in the order name,
// price, quantity, category, description.
type FormView struct {
	Inputs  []string
	Errors  validation.Errors
	Editing bool
	EditID  int64
}

var formFields = []lo.Tuple2[string, string]{
	lo.T2(validation.FieldName, "Name"),
	lo.T2(validation.FieldPrice, "Price"),
	lo.T2(validation.FieldQuantity, "Quantity"),
	lo.T2(validation.FieldCategory, "Category"),
	lo.T2(validation.FieldDescription, "Description"),
}

// FormFieldKeys returns the form's field keys in input order.
func FormFieldKeys() []string {
	return lo.Map(formFields, func(f lo.Tuple2[string, string], _ int) string { return f.A })
}

func (s Styles) RenderProductForm(v FormView) string {
	var b strings.Builder
	title := "New product"
	if v.Editing {
		title = fmt.Sprintf("Edit product #%d", v.EditID)
	}
	b.WriteString(s.Label.Render(title))
	b.WriteString("\n")

	for i, f := range formFields {
		if i >= len(v.Inputs) {
			break
		}
		b.WriteString(s.Label.Render(f.B+": ") + v.Inputs[i])
		b.WriteString("\n")
		if msg, ok := v.Errors[f.A]; ok {
			b.WriteString(s.Error.Render("  " + msg))
			b.WriteString("\n")
		}
	}
	b.WriteString(s.Muted.Render(CategoryHint()))
	return s.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// CategoryHint lists the accepted category codes.
func CategoryHint() string {
	codes := lo.Map(models.Categories, func(c models.Category, _ int) string { return string(c) })
	return "categories: " + strings.Join(codes, ", ")
}

// DashboardView is the whole dashboard screen.
type DashboardView struct {
	Filters       FilterView
	Products      []models.Product
	Selected      int
	Loading       bool
	Page          int
	TotalPages    int
	TotalElements int64
	Form          FormView
	ShowForm      bool
	ServerMessage string
	Help          string
}

func (s Styles) RenderDashboard(v DashboardView) string {
	sections := []string{
		s.Title.Render("Product Management Dashboard"),
		s.RenderFilters(v.Filters),
		"",
	}
	if v.Loading {
		sections = append(sections, s.Muted.Render("Loading..."))
	} else {
		sections = append(sections, s.RenderProductTable(v.Products, v.Selected))
	}
	sections = append(sections, s.RenderPager(v.Page, v.TotalPages, v.TotalElements))
	if v.ShowForm {
		sections = append(sections, "", s.RenderProductForm(v.Form))
	}
	if v.ServerMessage != "" {
		sections = append(sections, "", s.Warning.Render(v.ServerMessage))
	}
	if v.Help != "" {
		sections = append(sections, "", s.Muted.Render(v.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
