package telemetry

import (
	"context"

	"github.com/narender/product-console/common/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// newResource creates an OTel Resource describing this process.
func newResource(ctx context.Context, cfg *config.Config, serviceName string) *resource.Resource {
	attrs := resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironment(cfg.Environment),
	)
	res, err := resource.New(ctx,
		attrs,
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithProcessRuntimeDescription(),
	)
	if err != nil {
		// partial resources are still usable
		logrus.WithError(err).Warn("OTel resource detection incomplete")
	}

	merged, err := resource.Merge(resource.Default(), res)
	if err != nil {
		logrus.WithError(err).Warn("Error merging OTel resources, using detected resource")
		return res
	}
	return merged
}
