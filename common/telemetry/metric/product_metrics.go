package metric

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const (
	loginAttemptsName    = "console.login.attempts"
	productMutationsName = "console.product.mutations"
	catalogSizeName      = "mockbackend.catalog.size"
)

// RecordLoginAttempt counts one submitted login by outcome.
func RecordLoginAttempt(ctx context.Context, success bool) {
	counter, err := otel.Meter(InstrumentationName).Int64Counter(loginAttemptsName,
		otelmetric.WithDescription("Login submissions that reached the backend"),
		otelmetric.WithUnit("{attempt}"),
	)
	if err != nil {
		return
	}
	counter.Add(ctx, 1, otelmetric.WithAttributes(attribute.Bool("app.success", success)))
}

// RecordProductMutation counts create/update/delete calls by outcome.
func RecordProductMutation(ctx context.Context, operation string, err error) {
	counter, cErr := otel.Meter(InstrumentationName).Int64Counter(productMutationsName,
		otelmetric.WithDescription("Product create, update and delete calls"),
		otelmetric.WithUnit("{mutation}"),
	)
	if cErr != nil {
		return
	}
	counter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("app.operation", operation),
		attribute.Bool("app.error", err != nil),
	))
}

// RegisterCatalogSizeGauge reports size() on every collection. The returned
// function unregisters the callback.
func RegisterCatalogSizeGauge(size func(context.Context) (int64, error)) (func() error, error) {
	meter := otel.Meter(InstrumentationName)
	gauge, err := meter.Int64ObservableGauge(catalogSizeName,
		otelmetric.WithDescription("Number of products in the mock catalog"),
		otelmetric.WithUnit("{product}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s gauge: %w", catalogSizeName, err)
	}
	reg, err := meter.RegisterCallback(func(ctx context.Context, o otelmetric.Observer) error {
		n, err := size(ctx)
		if err != nil {
			return err
		}
		o.ObserveInt64(gauge, n)
		return nil
	}, gauge)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s callback: %w", catalogSizeName, err)
	}
	return reg.Unregister, nil
}
