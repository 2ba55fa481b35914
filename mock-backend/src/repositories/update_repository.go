package repositories

import (
	"context"
	"log/slog"

	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

// Update replaces every field of product id with p. The id is kept.
func (r *productRepository) Update(ctx context.Context, id int64, p models.Product) (updated models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("repository")
	defer mc.End(ctx, &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return models.Product{}, err
	}
	i := r.indexOf(catalog, id)
	if i < 0 {
		return models.Product{}, notFound(ctx, r.logger, id)
	}

	p.ID = id
	catalog.Products[i] = p
	if err := r.save(ctx, catalog); err != nil {
		return models.Product{}, err
	}

	r.logger.InfoContext(ctx, "Product replaced", slog.Int64(attributes.LogFieldProductID, id))
	return p, nil
}
