package repositories

import (
	"context"
	"log/slog"
	"slices"

	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
)

func (r *productRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("repository")
	defer mc.End(ctx, &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := r.indexOf(catalog, id)
	if i < 0 {
		return notFound(ctx, r.logger, id)
	}

	catalog.Products = slices.Delete(catalog.Products, i, i+1)
	if err := r.save(ctx, catalog); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Product removed", slog.Int64(attributes.LogFieldProductID, id))
	return nil
}
