package repositories

import (
	"context"
	"log/slog"
	"slices"

	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

func (r *productRepository) List(ctx context.Context) (products []models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx)
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("repository")
	defer mc.End(ctx, &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attributes.AttrAppProductCount.Int(len(catalog.Products)))
	r.logger.DebugContext(ctx, "Catalog loaded", slog.Int(attributes.LogFieldCount, len(catalog.Products)))
	return slices.Clone(catalog.Products), nil
}

// Count backs the catalog size gauge.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(catalog.Products)), nil
}
