package repositories

import (
	"context"
	"log/slog"

	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

// Create assigns the next id to p and appends it.
func (r *productRepository) Create(ctx context.Context, p models.Product) (created models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductCategoryKey.String(p.Category))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("repository")
	defer mc.End(ctx, &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return models.Product{}, err
	}

	p.ID = catalog.NextID
	catalog.NextID++
	catalog.Products = append(catalog.Products, p)

	if err := r.save(ctx, catalog); err != nil {
		return models.Product{}, err
	}

	span.SetAttributes(attributes.AttrAppProductIDKey.Int64(p.ID))
	r.logger.InfoContext(ctx, "Product stored",
		slog.Int64(attributes.LogFieldProductID, p.ID),
		slog.String("category", p.Category))
	return p, nil
}
