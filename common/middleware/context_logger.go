package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/narender/product-console/common/logging"
	"go.opentelemetry.io/otel/trace"
)

// ContextLoggerMiddleware puts a request-scoped logger carrying the request
// id and, when present, trace/span ids into the user context. It must run
// after the requestid and otelfiber middleware.
func ContextLoggerMiddleware(baseLogger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		requestLogger := baseLogger

		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			requestLogger = requestLogger.With(slog.String("request_id", id))
		}
		if spanCtx := trace.SpanFromContext(ctx).SpanContext(); spanCtx.IsValid() {
			requestLogger = requestLogger.With(
				slog.String("trace_id", spanCtx.TraceID().String()),
				slog.String("span_id", spanCtx.SpanID().String()),
			)
		}

		c.SetUserContext(logging.NewContextWithLogger(ctx, requestLogger))
		return c.Next()
	}
}
