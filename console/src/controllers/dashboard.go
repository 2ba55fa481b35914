package controllers

import (
	"context"
	"log/slog"
	"slices"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/services"
	"github.com/narender/product-console/console/src/validation"
	"github.com/samber/lo"
)

const (
	MsgCreated      = "Product created successfully"
	MsgUpdated      = "Product updated successfully"
	MsgCreateFailed = "Failed to create product"
	MsgUpdateFailed = "Failed to update product"
	MsgDeleteFailed = "Failed to delete product"
	MsgLoadFailed   = "Failed to load products"
	DefaultPageSize = 10
)

// FetchRequest is one issued list call. Token identifies it so that a
// completion arriving after a newer request was issued can be dropped.
type FetchRequest struct {
	Token uint64
	Query models.PageQuery
}

// SaveRequest is a validated create (ID zero) or update.
type SaveRequest struct {
	ID      int64
	Product models.Product
}

func (r SaveRequest) IsUpdate() bool { return r.ID != 0 }

// Dashboard is the product management screen's state. The displayed list is
// always the last accepted fetch for the current page, size and applied
// filters.
type Dashboard struct {
	products services.ProductService
	logger   *slog.Logger

	items         []models.Product
	loading       bool
	editTarget    *models.Product
	draft         models.ProductDraft
	formErrors    validation.Errors
	serverMessage string

	filterDraft   models.Filter
	applied       models.Filter
	page          int
	size          int
	totalPages    int
	totalElements int64

	issued uint64
}

func NewDashboard(products services.ProductService, logger *slog.Logger, pageSize int) *Dashboard {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Dashboard{
		products:   products,
		logger:     logger,
		items:      []models.Product{},
		draft:      models.NewDraft(),
		formErrors: validation.Errors{},
		size:       pageSize,
	}
}

// Products returns a copy of the displayed list.
func (d *Dashboard) Products() []models.Product { return slices.Clone(d.items) }

func (d *Dashboard) Loading() bool { return d.loading }
func (d *Dashboard) Draft() models.ProductDraft { return d.draft }
func (d *Dashboard) FormErrors() validation.Errors { return d.formErrors }
func (d *Dashboard) ServerMessage() string { return d.serverMessage }
func (d *Dashboard) Filter() models.Filter { return d.filterDraft }
func (d *Dashboard) AppliedFilter() models.Filter { return d.applied }
func (d *Dashboard) Page() int { return d.page }
func (d *Dashboard) PageSize() int { return d.size }
func (d *Dashboard) TotalPages() int { return d.totalPages }
func (d *Dashboard) TotalElements() int64 { return d.totalElements }
func (d *Dashboard) IsEditing() bool { return d.editTarget != nil }
func (d *Dashboard) HasNext() bool { return d.page+1 < d.totalPages }
func (d *Dashboard) HasPrev() bool { return d.page > 0 }

// EditTarget returns the product being edited, or nil in create mode.
func (d *Dashboard) EditTarget() *models.Product {
	if d.editTarget == nil {
		return nil
	}
	p := *d.editTarget
	return &p
}

// Mount loads page 0 with no filters.
func (d *Dashboard) Mount(ctx context.Context) error {
	d.page = 0
	d.filterDraft = models.Filter{}
	d.applied = models.Filter{}
	return d.Fetch(ctx)
}

// BeginFetch marks the list loading and issues a new request token.
func (d *Dashboard) BeginFetch() FetchRequest {
	d.loading = true
	d.issued++
	return FetchRequest{
		Token: d.issued,
		Query: models.PageQuery{Page: d.page, Size: d.size, Filter: d.applied},
	}
}

// CompleteFetch applies a list result. It reports false, changing nothing,
// when token is not the most recently issued one.
func (d *Dashboard) CompleteFetch(ctx context.Context, token uint64, page models.ProductPage, err error) bool {
	if token != d.issued {
		d.logger.DebugContext(ctx, "Discarding stale product page",
			slog.Uint64("token", token),
			slog.Uint64("latest", d.issued))
		return false
	}
	d.loading = false

	if err != nil {
		d.serverMessage = apierrors.UserMessage(err, MsgLoadFailed)
		d.logger.ErrorContext(ctx, "Failed to fetch products", slog.String(attributes.LogFieldError, err.Error()))
		return true
	}

	d.items = lo.Ternary(page.Items == nil, []models.Product{}, page.Items)
	d.totalPages = page.TotalPages
	d.totalElements = page.TotalElements
	return true
}

// Fetch loads the current page with the applied filters.
func (d *Dashboard) Fetch(ctx context.Context) (err error) {
	req := d.BeginFetch()

	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppPageKey.Int(req.Query.Page),
		attributes.AttrAppRequestTokenKey.Int64(int64(req.Token)),
	)
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("controller")
	defer mc.End(ctx, &err)

	page, err := d.products.List(ctx, req.Query)
	d.CompleteFetch(ctx, req.Token, page, err)
	return err
}

// SelectPage moves the cursor without fetching. Negative pages clamp to 0.
// It reports whether the cursor moved.
func (d *Dashboard) SelectPage(p int) bool {
	p = max(p, 0)
	if p == d.page {
		return false
	}
	d.page = p
	return true
}

// SetPage moves the cursor and fetches. Staying on the current page fetches
// nothing; use Fetch to reload.
func (d *Dashboard) SetPage(ctx context.Context, p int) error {
	if !d.SelectPage(p) {
		return nil
	}
	return d.Fetch(ctx)
}

// NextPage fetches the following page; it does nothing on the last page.
func (d *Dashboard) NextPage(ctx context.Context) error {
	if !d.HasNext() {
		return nil
	}
	return d.SetPage(ctx, d.page+1)
}

// PrevPage fetches the previous page; it does nothing on page 0.
func (d *Dashboard) PrevPage(ctx context.Context) error {
	if !d.HasPrev() {
		return nil
	}
	return d.SetPage(ctx, d.page-1)
}

// SetFilter edits the filter fields. Nothing is fetched until Search.
func (d *Dashboard) SetFilter(f models.Filter) {
	d.filterDraft = f
}

// ApplyFilters snapshots the filter fields and rewinds to page 0.
func (d *Dashboard) ApplyFilters() {
	d.applied = d.filterDraft
	d.page = 0
}

// Search applies the filter fields and fetches page 0.
func (d *Dashboard) Search(ctx context.Context) error {
	d.ApplyFilters()
	return d.Fetch(ctx)
}

// ResetFilters clears both the filter fields and the applied filters.
func (d *Dashboard) ResetFilters() {
	d.filterDraft = models.Filter{}
	d.applied = models.Filter{}
	d.page = 0
}

// ClearFilters resets the filters and fetches page 0.
func (d *Dashboard) ClearFilters(ctx context.Context) error {
	d.ResetFilters()
	return d.Fetch(ctx)
}

// Edit switches the form to update mode preloaded with p.
func (d *Dashboard) Edit(p models.Product) {
	d.editTarget = &p
	d.draft = models.DraftFromProduct(p)
	d.formErrors = validation.Errors{}
}

// Cancel returns the form to a blank create form.
func (d *Dashboard) Cancel() {
	d.editTarget = nil
	d.draft = models.NewDraft()
	d.formErrors = validation.Errors{}
}

// SetDraft replaces the whole form.
func (d *Dashboard) SetDraft(draft models.ProductDraft) {
	d.draft = draft
}

// SetField updates one form field by its validation key. Unknown keys are
// ignored.
func (d *Dashboard) SetField(field, value string) {
	switch field {
	case validation.FieldName:
		d.draft.Name = value
	case validation.FieldPrice:
		d.draft.Price = value
	case validation.FieldQuantity:
		d.draft.Quantity = value
	case validation.FieldCategory:
		d.draft.Category = value
	case validation.FieldDescription:
		d.draft.Description = value
	}
}

// BeginSave validates the form. It returns false, with FormErrors set, when
// the draft is invalid.
func (d *Dashboard) BeginSave() (SaveRequest, bool) {
	d.serverMessage = ""
	d.formErrors = validation.ValidateProduct(d.draft)
	if !d.formErrors.Valid() {
		return SaveRequest{}, false
	}

	req := SaveRequest{Product: d.draft.Product()}
	if d.editTarget != nil {
		req.ID = d.editTarget.ID
	}
	return req, true
}

// CompleteSave applies a create or update outcome and reports whether the
// list needs re-fetching. The edit target survives a failure.
func (d *Dashboard) CompleteSave(ctx context.Context, req SaveRequest, res models.MutationResult, err error) bool {
	if err != nil {
		fallback := lo.Ternary(req.IsUpdate(), MsgUpdateFailed, MsgCreateFailed)
		d.serverMessage = apierrors.UserMessage(err, fallback)
		d.logger.WarnContext(ctx, "Saving product failed",
			slog.Int64(attributes.LogFieldProductID, req.ID),
			slog.String(attributes.LogFieldError, err.Error()))
		return false
	}

	d.serverMessage, _ = lo.Coalesce(res.Message, lo.Ternary(req.IsUpdate(), MsgUpdated, MsgCreated))
	d.Cancel()
	return true
}

// Save creates or updates depending on whether an edit target is set, then
// re-fetches the list on success.
func (d *Dashboard) Save(ctx context.Context) (err error) {
	req, ok := d.BeginSave()
	if !ok {
		return ErrInvalidForm
	}

	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppProductIDKey.Int64(req.ID),
		attributes.AttrAppProductCategoryKey.String(string(req.Product.Category)),
	)
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("controller")
	defer mc.End(ctx, &err)

	var res models.MutationResult
	if req.IsUpdate() {
		res, err = d.products.Update(ctx, req.ID, req.Product)
	} else {
		res, err = d.products.Create(ctx, req.Product)
	}
	if !d.CompleteSave(ctx, req, res, err) {
		return err
	}
	return d.Fetch(ctx)
}

// Create saves the draft as a new product regardless of the edit target.
func (d *Dashboard) Create(ctx context.Context) error {
	d.editTarget = nil
	return d.Save(ctx)
}

// Update saves the draft over id.
func (d *Dashboard) Update(ctx context.Context, id int64) error {
	p := d.draft.Product()
	p.ID = id
	d.editTarget = &p
	return d.Save(ctx)
}

// CompleteDelete records a delete outcome. The list is re-fetched either way.
func (d *Dashboard) CompleteDelete(ctx context.Context, id int64, err error) {
	if err != nil {
		d.serverMessage = apierrors.UserMessage(err, MsgDeleteFailed)
		d.logger.WarnContext(ctx, "Deleting product failed",
			slog.Int64(attributes.LogFieldProductID, id),
			slog.String(attributes.LogFieldError, err.Error()))
		return
	}
	d.serverMessage = ""
}

// Delete removes id on the backend and re-fetches regardless of outcome.
// The delete error wins over a fetch error.
func (d *Dashboard) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("controller")
	defer mc.End(ctx, &err)

	err = d.products.Delete(ctx, id)
	d.CompleteDelete(ctx, id, err)
	fetchErr := d.Fetch(ctx)
	if err != nil {
		return err
	}
	return fetchErr
}
