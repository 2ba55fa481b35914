package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	apierrors "github.com/narender/product-console/common/apierrors"
	db "github.com/narender/product-console/common/db"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/mock-backend/src/models"
)

// ProductRepository persists the catalog. All methods are safe for
// concurrent use.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id int64, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	// mu serializes every read-modify-write of the data file.
	mu       sync.Mutex
	database *db.FileDatabase
	logger   *slog.Logger
}

// NewProductRepository creates a repository over database. The file is
// seeded on first access when it does not exist.
func NewProductRepository(database *db.FileDatabase, logger *slog.Logger) ProductRepository {
	return &productRepository{
		database: database,
		logger:   logger,
	}
}

// SeedCatalog is the catalog written to a fresh data file.
func SeedCatalog() models.Catalog {
	return models.Catalog{
		NextID: 4,
		Products: []models.Product{
			{ID: 1, Name: "Laptop Dell XPS", Price: 600000, Quantity: 20, Category: "LAPTOP", Description: "High performance, thin and light design."},
			{ID: 2, Name: "Samsung Galaxy", Price: 800000, Quantity: 12, Category: "SMARTPHONE", Description: "Sharp display, quality camera."},
			{ID: 3, Name: "Canon printer", Price: 220000, Quantity: 30, Category: "PRINTER", Description: "Fast printing, saves ink."},
		},
	}
}

// load reads the catalog, seeding the file when missing. Callers hold mu.
func (r *productRepository) load(ctx context.Context) (models.Catalog, error) {
	var catalog models.Catalog
	err := r.database.Read(ctx, &catalog)
	switch {
	case errors.Is(err, db.ErrNotFound):
		r.logger.InfoContext(ctx, "Data file missing, writing seed catalog",
			slog.String("file_path", r.database.FilePath()))
		catalog = SeedCatalog()
		if err := r.database.Write(ctx, catalog); err != nil {
			return models.Catalog{}, databaseError("Failed to seed product data", err)
		}
	case err != nil:
		return models.Catalog{}, databaseError("Failed to read product data from database", err)
	}

	if catalog.NextID <= 0 {
		catalog.NextID = 1
		for _, p := range catalog.Products {
			catalog.NextID = max(catalog.NextID, p.ID+1)
		}
	}
	return catalog, nil
}

// save writes the catalog back. Callers hold mu.
func (r *productRepository) save(ctx context.Context, catalog models.Catalog) error {
	if err := r.database.Write(ctx, catalog); err != nil {
		return databaseError("Failed to write product data", err)
	}
	return nil
}

func (r *productRepository) indexOf(catalog models.Catalog, id int64) int {
	for i, p := range catalog.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func databaseError(msg string, err error) error {
	return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, msg, err)
}

func notFound(ctx context.Context, logger *slog.Logger, id int64) error {
	logger.WarnContext(ctx, "Product not found",
		slog.Int64(attributes.LogFieldProductID, id),
		slog.String("error_code", apierrors.ErrCodeProductNotFound))
	return apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound,
		fmt.Sprintf("Product with id %d not found", id), nil)
}
