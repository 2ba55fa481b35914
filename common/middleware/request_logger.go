package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/product-console/common/logging"
)

// RequestLoggerMiddleware logs one line per request once the handler chain
// (and error handler) has produced a status. Paths in skip are not logged.
func RequestLoggerMiddleware(logger *slog.Logger, skip ...string) fiber.Handler {
	skipPaths := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipPaths[p] = true
	}

	return func(c *fiber.Ctx) error {
		if skipPaths[c.Path()] {
			return c.Next()
		}
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()
		if err != nil {
			// let the error handler write the response so the status is final
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		statusCode := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.IP()),
		}

		ctx := c.UserContext()
		l := logging.FromContext(ctx, logger)
		switch {
		case statusCode >= 500:
			l.LogAttrs(ctx, slog.LevelError, "Request completed", attrs...)
		case statusCode >= 400:
			l.LogAttrs(ctx, slog.LevelWarn, "Request completed", attrs...)
		default:
			l.LogAttrs(ctx, slog.LevelInfo, "Request completed", attrs...)
		}
		return nil
	}
}
