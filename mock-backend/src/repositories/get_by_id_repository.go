package repositories

import (
	"context"

	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

func (r *productRepository) GetByID(ctx context.Context, id int64) (product models.Product, err error) {
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
	return catalog.Products[i], nil
}
