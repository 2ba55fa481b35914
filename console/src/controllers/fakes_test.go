package controllers

import (
	"context"
	"slices"
	"strings"
	"time"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/console/src/models"
)

type fakeAuth struct {
	calls []models.Credentials
	resp  *models.LoginResponse
	err   error
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	f.calls = append(f.calls, creds)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

type fakeScheduler struct {
	jobs []scheduled
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) {
	s.jobs = append(s.jobs, scheduled{delay: d, fn: fn})
}

// fakeProducts is an in-memory catalog that pages like the real backend.
type fakeProducts struct {
	items  []models.Product
	nextID int64

	listCalls   []models.PageQuery
	createCalls []models.Product
	updateCalls []int64
	deleteCalls []int64

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeProducts(items ...models.Product) *fakeProducts {
	f := &fakeProducts{nextID: 1}
	for _, p := range items {
		f.items = append(f.items, p)
		f.nextID = max(f.nextID, p.ID+1)
	}
	return f
}

func (f *fakeProducts) List(_ context.Context, q models.PageQuery) (models.ProductPage, error) {
	f.listCalls = append(f.listCalls, q)
	if f.listErr != nil {
		return models.ProductPage{}, f.listErr
	}
	var matched []models.Product
	for _, p := range f.items {
		if q.Filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Filter.Search)) {
			continue
		}
		if q.Filter.Category != "" && string(p.Category) != q.Filter.Category {
			continue
		}
		matched = append(matched, p)
	}
	start := min(q.Page*q.Size, len(matched))
	end := min(start+q.Size, len(matched))
	pages := (len(matched) + q.Size - 1) / q.Size
	return models.ProductPage{
		Items:         slices.Clone(matched[start:end]),
		Page:          q.Page,
		Size:          q.Size,
		TotalPages:    pages,
		TotalElements: int64(len(matched)),
	}, nil
}

func (f *fakeProducts) Create(_ context.Context, p models.Product) (models.MutationResult, error) {
	f.createCalls = append(f.createCalls, p)
	if f.createErr != nil {
		return models.MutationResult{}, f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	f.items = append(f.items, p)
	return models.MutationResult{Product: p}, nil
}

func (f *fakeProducts) Update(_ context.Context, id int64, p models.Product) (models.MutationResult, error) {
	f.updateCalls = append(f.updateCalls, id)
	if f.updateErr != nil {
		return models.MutationResult{}, f.updateErr
	}
	i := slices.IndexFunc(f.items, func(x models.Product) bool { return x.ID == id })
	if i < 0 {
		return models.MutationResult{}, apierrors.NewServerError(404, "Product not found")
	}
	p.ID = id
	f.items[i] = p
	return models.MutationResult{Product: p, Message: "Product updated"}, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.items = slices.DeleteFunc(f.items, func(x models.Product) bool { return x.ID == id })
	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop Dell XPS", Price: 600000, Quantity: 20, Category: models.CategoryLaptop},
		{ID: 2, Name: "Samsung Galaxy", Price: 800000, Quantity: 12, Category: models.CategorySmartphone},
		{ID: 3, Name: "Canon printer", Price: 220000, Quantity: 30, Category: models.CategoryPrinter},
	}
}
