package services

import (
	"context"
	"log/slog"

	"github.com/narender/product-console/common/telemetry/attributes"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

func (s *productService) Get(ctx context.Context, id int64) (p models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	return s.repo.GetByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, p models.Product) (created models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductCategoryKey.String(p.Category))
	defer commontrace.EndSpan(span, &err, nil)

	p.ID = 0
	created, err = s.repo.Create(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	s.logger.InfoContext(ctx, "Product created", slog.Int64(attributes.LogFieldProductID, created.ID))
	return created, nil
}

func (s *productService) Update(ctx context.Context, id int64, p models.Product) (updated models.Product, err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	updated, err = s.repo.Update(ctx, id, p)
	if err != nil {
		return models.Product{}, err
	}
	s.logger.InfoContext(ctx, "Product updated", slog.Int64(attributes.LogFieldProductID, id))
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Product deleted", slog.Int64(attributes.LogFieldProductID, id))
	return nil
}
