package services

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	apierrors "github.com/narender/product-console/common/apierrors"
	apiresponses "github.com/narender/product-console/common/apiresponses"
	"github.com/narender/product-console/common/telemetry/attributes"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/mock-backend/src/models"
)

// checkRanges rejects filters whose lower bound exceeds the upper bound.
func checkRanges(f models.ProductFilter) error {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return apierrors.NewBusinessError(apierrors.ErrCodeInvalidFilter, "Minimum price cannot exceed maximum price", nil)
	}
	if f.MinQuantity != nil && f.MaxQuantity != nil && *f.MinQuantity > *f.MaxQuantity {
		return apierrors.NewBusinessError(apierrors.ErrCodeInvalidFilter, "Minimum quantity cannot exceed maximum quantity", nil)
	}
	return nil
}

// List filters the catalog, orders it by id and returns the requested page.
func (s *productService) List(ctx context.Context, filter models.ProductFilter, page, size int) (resp apiresponses.PagedResponse[models.Product], err error) {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = max(page, 0)

	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppPageKey.Int(page),
		attributes.AttrAppPageSizeKey.Int(size),
	)
	defer commontrace.EndSpan(span, &err, nil)

	if err := checkRanges(filter); err != nil {
		s.logger.WarnContext(ctx, "Rejected product filter", slog.String(attributes.LogFieldError, err.Error()))
		return apiresponses.PagedResponse[models.Product]{}, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return apiresponses.PagedResponse[models.Product]{}, err
	}

	matched := lo.Filter(all, func(p models.Product, _ int) bool {
		return filter.Matches(p)
	})
	slices.SortFunc(matched, func(a, b models.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	resp = apiresponses.NewPagedResponse(matched, page, size)
	span.SetAttributes(
		attributes.AttrAppProductCount.Int(len(resp.Items)),
		attributes.AttrAppTotalPagesKey.Int(resp.TotalPages),
	)
	s.logger.DebugContext(ctx, "Products listed",
		slog.Int(attributes.LogFieldPage, page),
		slog.Int(attributes.LogFieldCount, len(resp.Items)),
		slog.Int64("total", resp.TotalElements))
	return resp, nil
}
