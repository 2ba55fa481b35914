package metric

import (
	"context"
	"time"

	"github.com/narender/product-console/common/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const InstrumentationName = "github.com/narender/product-console/common/telemetry/metric"

const (
	OperationsTotalName = "app.operations.total"
	DurationName        = "app.operations.duration_milliseconds"
	ErrorsTotalName     = "app.operations.errors.total"
)

// MetricsController records one operation when End is called.
type MetricsController interface {
	End(ctx context.Context, err *error, additionalAttrs ...attribute.KeyValue)
}

type metricsControllerImpl struct {
	startTime time.Time
	layer     string
	operation string
}

// StartMetricsTimer starts timing the calling function. layer is a coarse
// grouping such as "client", "controller" or "repository".
func StartMetricsTimer(layer string) MetricsController {
	return &metricsControllerImpl{
		startTime: time.Now(),
		layer:     layer,
		operation: utils.GetCallerFunctionName(3),
	}
}

func (mc *metricsControllerImpl) End(ctx context.Context, errPtr *error, additionalAttrs ...attribute.KeyValue) {
	// instruments come from the current global provider so a provider
	// installed after package init is honoured
	meter := otel.Meter(InstrumentationName)
	durationMs := float64(time.Since(mc.startTime).Microseconds()) / 1000.0
	isError := errPtr != nil && *errPtr != nil

	attrs := append([]attribute.KeyValue{
		attribute.String("app.layer", mc.layer),
		attribute.String("app.operation", mc.operation),
		attribute.Bool("app.error", isError),
	}, additionalAttrs...)
	opt := metric.WithAttributes(attrs...)

	if c, err := meter.Int64Counter(OperationsTotalName,
		metric.WithDescription("Total number of operations executed"),
		metric.WithUnit("{operation}"),
	); err == nil {
		c.Add(ctx, 1, opt)
	}
	if h, err := meter.Float64Histogram(DurationName,
		metric.WithDescription("Duration of operations in milliseconds"),
		metric.WithUnit("ms"),
	); err == nil {
		h.Record(ctx, durationMs, opt)
	}
	if !isError {
		return
	}
	if c, err := meter.Int64Counter(ErrorsTotalName,
		metric.WithDescription("Total number of operations that resulted in an error"),
		metric.WithUnit("{error}"),
	); err == nil {
		c.Add(ctx, 1, opt)
	}
}
