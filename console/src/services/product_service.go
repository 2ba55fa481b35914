package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/console/src/models"
)

const productsPath = "/api/products"

// ProductService is the product catalog client.
type ProductService interface {
	List(ctx context.Context, q models.PageQuery) (models.ProductPage, error)
	Create(ctx context.Context, p models.Product) (models.MutationResult, error)
	Update(ctx context.Context, id int64, p models.Product) (models.MutationResult, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	client *restClient
	logger *slog.Logger
}

func NewProductService(cfg *config.Config, logger *slog.Logger, opts ...Option) ProductService {
	return &productService{
		client: newRESTClient(cfg, logger, opts...),
		logger: logger,
	}
}

// listQuery encodes page and size always, and each filter only when set.
func listQuery(q models.PageQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))

	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Set(key, value)
		}
	}
	f := q.Filter
	set("search", f.Search)
	set("category", f.Category)
	set("minPrice", f.PriceMin)
	set("maxPrice", f.PriceMax)
	set("minQuantity", f.QtyMin)
	set("maxQuantity", f.QtyMax)
	return v
}

func (s *productService) List(ctx context.Context, q models.PageQuery) (page models.ProductPage, err error) {
	ctx, span := commontrace.StartClientSpan(ctx,
		attributes.AttrAppPageKey.Int(q.Page),
		attributes.AttrAppPageSizeKey.Int(q.Size),
	)
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("client")
	defer mc.End(ctx, &err)

	raw, err := s.client.do(ctx, http.MethodGet, productsPath, listQuery(q), nil)
	if err != nil {
		return models.ProductPage{}, err
	}

	page, err = decodeProductPage(raw, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to decode product page", slog.String(attributes.LogFieldError, err.Error()))
		return models.ProductPage{}, malformed("product list", err)
	}

	span.SetAttributes(
		attributes.AttrAppProductCount.Int(len(page.Items)),
		attributes.AttrAppTotalPagesKey.Int(page.TotalPages),
	)
	s.logger.DebugContext(ctx, "Fetched product page",
		slog.Int(attributes.LogFieldPage, page.Page),
		slog.Int(attributes.LogFieldCount, len(page.Items)),
		slog.Int("total_pages", page.TotalPages))
	return page, nil
}

func (s *productService) Create(ctx context.Context, p models.Product) (result models.MutationResult, err error) {
	ctx, span := commontrace.StartClientSpan(ctx, attributes.AttrAppProductCategoryKey.String(string(p.Category)))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("client")
	defer func() {
		mc.End(ctx, &err)
		metric.RecordProductMutation(ctx, "create", err)
	}()

	p.ID = 0
	raw, err := s.client.do(ctx, http.MethodPost, productsPath, nil, p)
	if err != nil {
		return result, err
	}
	if result, err = decodeMutation(raw); err != nil {
		return models.MutationResult{}, malformed("product", err)
	}

	span.SetAttributes(attributes.AttrAppProductIDKey.Int64(result.Product.ID))
	s.logger.InfoContext(ctx, "Product created", slog.Int64(attributes.LogFieldProductID, result.Product.ID))
	return result, nil
}

func (s *productService) Update(ctx context.Context, id int64, p models.Product) (result models.MutationResult, err error) {
	ctx, span := commontrace.StartClientSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("client")
	defer func() {
		mc.End(ctx, &err)
		metric.RecordProductMutation(ctx, "update", err)
	}()

	p.ID = id
	raw, err := s.client.do(ctx, http.MethodPut, productPath(id), nil, p)
	if err != nil {
		return result, err
	}
	if result, err = decodeMutation(raw); err != nil {
		return models.MutationResult{}, malformed("product", err)
	}

	s.logger.InfoContext(ctx, "Product updated", slog.Int64(attributes.LogFieldProductID, id))
	return result, nil
}

func (s *productService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := commontrace.StartClientSpan(ctx, attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("client")
	defer func() {
		mc.End(ctx, &err)
		metric.RecordProductMutation(ctx, "delete", err)
	}()

	if _, err = s.client.do(ctx, http.MethodDelete, productPath(id), nil, nil); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Product deleted", slog.Int64(attributes.LogFieldProductID, id))
	return nil
}

func productPath(id int64) string {
	return fmt.Sprintf("%s/%d", productsPath, id)
}
