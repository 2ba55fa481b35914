package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/log"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/validation"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productNames(ps []models.Product) []string {
	return lo.Map(ps, func(p models.Product, _ int) string { return p.Name })
}

func mountedDashboard(t *testing.T, svc *fakeProducts, size int) *Dashboard {
	t.Helper()
	d := NewDashboard(svc, log.Discard(), size)
	require.NoError(t, d.Mount(context.Background()))
	return d
}

func TestDashboardMountFetchesFirstPage(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	require.Len(t, svc.listCalls, 1)
	assert.Equal(t, models.PageQuery{Page: 0, Size: 10}, svc.listCalls[0])
	assert.Equal(t, []string{"Laptop Dell XPS", "Samsung Galaxy", "Canon printer"}, productNames(d.Products()))
	assert.Equal(t, 1, d.TotalPages())
	assert.Equal(t, int64(3), d.TotalElements())
	assert.False(t, d.Loading())
	assert.False(t, d.IsEditing())
	assert.Equal(t, string(models.CategoryLaptop), d.Draft().Category)
}

func TestDashboardDefaultPageSize(t *testing.T) {
	d := NewDashboard(newFakeProducts(), log.Discard(), 0)
	assert.Equal(t, DefaultPageSize, d.PageSize())
}

func TestDashboardCreateRefetches(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	d.SetField(validation.FieldName, "iPad Air")
	d.SetField(validation.FieldPrice, "15000")
	d.SetField(validation.FieldQuantity, "8")
	d.SetField(validation.FieldCategory, string(models.CategoryTablet))
	d.SetField(validation.FieldDescription, "  light  ")

	require.NoError(t, d.Save(context.Background()))

	require.Len(t, svc.createCalls, 1)
	assert.Equal(t, models.Product{Name: "iPad Air", Price: 15000, Quantity: 8, Category: models.CategoryTablet, Description: "light"}, svc.createCalls[0])
	assert.Len(t, svc.listCalls, 2)
	assert.Contains(t, productNames(d.Products()), "iPad Air")
	assert.Equal(t, MsgCreated, d.ServerMessage())
	assert.Equal(t, models.NewDraft(), d.Draft())
	assert.False(t, d.IsEditing())
}

func TestDashboardCreateInvalidSkipsBackend(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	d.SetDraft(models.ProductDraft{Name: "AB", Price: "1", Quantity: "-5", Category: "Food"})
	err := d.Save(context.Background())

	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Empty(t, svc.createCalls)
	assert.Len(t, svc.listCalls, 1)
	want := validation.Errors{
		validation.FieldName:     validation.MsgNameTooShort,
		validation.FieldQuantity: validation.MsgQuantityNegative,
		validation.FieldCategory: validation.MsgCategoryInvalid,
	}
	if diff := cmp.Diff(want, d.FormErrors()); diff != "" {
		t.Errorf("FormErrors() mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardCreateFailureMessages(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.SetDraft(models.ProductDraft{Name: "Router X", Price: "10", Quantity: "1", Category: string(models.CategoryNetworkDevice)})

	svc.createErr = apierrors.NewAppError(apierrors.ErrCodeNetworkError, "Backend is unreachable", errors.New("refused"))
	require.Error(t, d.Save(context.Background()))
	assert.Equal(t, "Backend is unreachable", d.ServerMessage())
	assert.Len(t, svc.listCalls, 1, "no re-fetch after a failed save")
	assert.Equal(t, "Router X", d.Draft().Name, "form kept for retry")

	svc.createErr = apierrors.NewServerError(400, "Name already taken")
	require.Error(t, d.Save(context.Background()))
	assert.Equal(t, "Name already taken", d.ServerMessage())
}

func TestDashboardEditAndUpdate(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	target := d.Products()[1]
	d.Edit(target)
	assert.True(t, d.IsEditing())
	assert.Equal(t, models.DraftFromProduct(target), d.Draft())
	assert.Equal(t, "800000", d.Draft().Price)

	d.SetField(validation.FieldName, "Samsung Galaxy S24")
	require.NoError(t, d.Save(context.Background()))

	assert.Equal(t, []int64{2}, svc.updateCalls)
	assert.Empty(t, svc.createCalls)
	assert.Equal(t, "Product updated", d.ServerMessage(), "server message wins over the default")
	assert.False(t, d.IsEditing())
	assert.Contains(t, productNames(d.Products()), "Samsung Galaxy S24")
}

func TestDashboardUpdateFailureKeepsEditTarget(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.Edit(d.Products()[0])

	svc.updateErr = errors.New("boom")
	require.Error(t, d.Save(context.Background()))

	assert.Equal(t, MsgUpdateFailed, d.ServerMessage())
	require.True(t, d.IsEditing())
	assert.Equal(t, int64(1), d.EditTarget().ID)
}

func TestDashboardUpdateByID(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.SetDraft(models.ProductDraft{Name: "Canon printer v2", Price: "1", Quantity: "1", Category: string(models.CategoryPrinter)})

	require.NoError(t, d.Update(context.Background(), 3))
	assert.Equal(t, []int64{3}, svc.updateCalls)
}

func TestDashboardCreateIgnoresEditTarget(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.Edit(d.Products()[0])
	d.SetField(validation.FieldName, "Copy of laptop")

	require.NoError(t, d.Create(context.Background()))
	assert.Len(t, svc.createCalls, 1)
	assert.Empty(t, svc.updateCalls)
}

func TestDashboardCancelResetsForm(t *testing.T) {
	d := mountedDashboard(t, newFakeProducts(seedProducts()...), 10)
	d.Edit(d.Products()[2])
	d.SetDraft(models.ProductDraft{Name: "A"})
	_, _ = d.BeginSave()
	require.False(t, d.FormErrors().Valid())

	d.Cancel()
	assert.False(t, d.IsEditing())
	assert.Nil(t, d.EditTarget())
	assert.Equal(t, models.NewDraft(), d.Draft())
	assert.True(t, d.FormErrors().Valid())
}

func TestDashboardDeleteRefetches(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	require.NoError(t, d.Delete(context.Background(), 2))

	assert.Equal(t, []int64{2}, svc.deleteCalls)
	assert.Len(t, svc.listCalls, 2)
	assert.NotContains(t, productNames(d.Products()), "Samsung Galaxy")
	assert.Equal(t, int64(2), d.TotalElements())
}

func TestDashboardDeleteFailureStillRefetches(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	svc.deleteErr = apierrors.NewServerError(404, "")

	err := d.Delete(context.Background(), 9)
	assert.True(t, apierrors.IsStatus(err, 404))
	assert.Len(t, svc.listCalls, 2)
	assert.Equal(t, "Request failed with status 404 (Not Found)", d.ServerMessage())

	svc.deleteErr = errors.New("socket closed")
	require.Error(t, d.Delete(context.Background(), 9))
	assert.Equal(t, MsgDeleteFailed, d.ServerMessage())
}

func TestDashboardFetchFailureKeepsList(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)

	svc.listErr = apierrors.NewServerError(500, "Database offline")
	require.Error(t, d.Fetch(context.Background()))

	assert.False(t, d.Loading())
	assert.Equal(t, "Database offline", d.ServerMessage())
	assert.Len(t, d.Products(), 3)
}

func TestDashboardPagination(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 2)
	assert.Equal(t, 2, d.TotalPages())
	assert.False(t, d.HasPrev())
	assert.True(t, d.HasNext())

	require.NoError(t, d.NextPage(context.Background()))
	assert.Equal(t, 1, d.Page())
	assert.Equal(t, []string{"Canon printer"}, productNames(d.Products()))
	assert.Equal(t, 1, svc.listCalls[len(svc.listCalls)-1].Page)

	calls := len(svc.listCalls)
	require.NoError(t, d.NextPage(context.Background()))
	assert.Len(t, svc.listCalls, calls, "no fetch past the last page")

	require.NoError(t, d.PrevPage(context.Background()))
	assert.Equal(t, 0, d.Page())
	require.NoError(t, d.PrevPage(context.Background()))
	assert.Len(t, svc.listCalls, calls+1, "no fetch before page 0")

	require.NoError(t, d.SetPage(context.Background(), -3))
	assert.Equal(t, 0, d.Page())
	require.NoError(t, d.SetPage(context.Background(), 0))
	assert.Len(t, svc.listCalls, calls+1, "same page is not re-fetched")

	require.NoError(t, d.SetPage(context.Background(), 1))
	assert.Len(t, svc.listCalls, calls+2)
	assert.Equal(t, 1, svc.listCalls[len(svc.listCalls)-1].Page)
}

func TestDashboardFilterEditsDoNotFetch(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 2)
	require.NoError(t, d.NextPage(context.Background()))
	calls := len(svc.listCalls)

	d.SetFilter(models.Filter{Search: "galaxy"})
	assert.Len(t, svc.listCalls, calls)
	assert.True(t, d.AppliedFilter().IsZero())

	require.NoError(t, d.Search(context.Background()))
	last := svc.listCalls[len(svc.listCalls)-1]
	assert.Equal(t, models.PageQuery{Page: 0, Size: 2, Filter: models.Filter{Search: "galaxy"}}, last)
	assert.Equal(t, []string{"Samsung Galaxy"}, productNames(d.Products()))

	// later edits do not leak into page changes until the next search
	d.SetFilter(models.Filter{Search: "canon"})
	require.NoError(t, d.Fetch(context.Background()))
	assert.Equal(t, "galaxy", svc.listCalls[len(svc.listCalls)-1].Filter.Search)
}

func TestDashboardClearFilters(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.SetFilter(models.Filter{Category: string(models.CategoryPrinter)})
	require.NoError(t, d.Search(context.Background()))
	require.Len(t, d.Products(), 1)

	require.NoError(t, d.ClearFilters(context.Background()))
	assert.True(t, d.Filter().IsZero())
	assert.True(t, d.AppliedFilter().IsZero())
	assert.Len(t, d.Products(), 3)
}

func TestDashboardStaleFetchDiscarded(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := NewDashboard(svc, log.Discard(), 10)
	ctx := context.Background()

	first := d.BeginFetch()
	second := d.BeginFetch()
	assert.Greater(t, second.Token, first.Token)

	newer := models.ProductPage{Items: []models.Product{{ID: 9, Name: "Newest"}}, TotalPages: 1, TotalElements: 1}
	older := models.ProductPage{Items: seedProducts(), TotalPages: 1, TotalElements: 3}

	assert.True(t, d.CompleteFetch(ctx, second.Token, newer, nil))
	assert.False(t, d.CompleteFetch(ctx, first.Token, older, nil))
	assert.Equal(t, []string{"Newest"}, productNames(d.Products()))
	assert.False(t, d.Loading())

	third := d.BeginFetch()
	assert.True(t, d.Loading())
	assert.False(t, d.CompleteFetch(ctx, second.Token, older, nil))
	assert.True(t, d.Loading(), "stale completion leaves the newer request loading")
	assert.True(t, d.CompleteFetch(ctx, third.Token, models.ProductPage{}, nil))
	assert.Empty(t, d.Products())
}

func TestDashboardResetFormSavesWithJustAName(t *testing.T) {
	svc := newFakeProducts(seedProducts()...)
	d := mountedDashboard(t, svc, 10)
	d.Edit(d.Products()[0])
	d.Cancel()

	d.SetField(validation.FieldName, "Logitech mouse")
	require.NoError(t, d.Save(context.Background()))

	assert.Empty(t, d.FormErrors())
	require.Len(t, svc.createCalls, 1)
	assert.Equal(t, models.Product{Name: "Logitech mouse", Category: models.CategoryLaptop}, svc.createCalls[0])
}
