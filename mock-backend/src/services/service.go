package services

import (
	"context"
	"log/slog"

	apiresponses "github.com/narender/product-console/common/apiresponses"
	"github.com/narender/product-console/mock-backend/src/models"
	"github.com/narender/product-console/mock-backend/src/repositories"
)

// DefaultPageSize applies when a listing asks for size 0.
const DefaultPageSize = 10

type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter, page, size int) (apiresponses.PagedResponse[models.Product], error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id int64, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo   repositories.ProductRepository
	logger *slog.Logger
}

func NewProductService(repo repositories.ProductRepository, logger *slog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger,
	}
}
