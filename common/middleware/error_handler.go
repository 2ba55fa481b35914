package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/product-console/common/apierrors"
	apiresponses "github.com/narender/product-console/common/apiresponses"
	"github.com/narender/product-console/common/logging"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ErrorHandler turns handler errors into {success:false, message} bodies.
// AppErrors choose their own status; fiber errors keep theirs; anything
// else is a 500 with a generic message.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		statusCode := http.StatusInternalServerError
		errCode := apierrors.ErrCodeUnknown
		message := "An unexpected error occurred"

		var appErr *apierrors.AppError
		var fiberErr *fiber.Error
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &appErr):
			statusCode = appErr.HTTPStatus()
			errCode = appErr.Code
			message = appErr.Message
		case errors.As(err, &fiberErr):
			statusCode = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
			statusCode = http.StatusBadRequest
			errCode = apierrors.ErrCodeMalformedData
			message = "Invalid data format in request"
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			statusCode = http.StatusRequestTimeout
			errCode = apierrors.ErrCodeRequestTimeout
			message = "Request processing timed out"
		}

		ctx := c.UserContext()
		span := oteltrace.SpanFromContext(ctx)
		if statusCode >= http.StatusInternalServerError {
			commontrace.RecordSpanError(span, err, attribute.String("app.error.code", errCode))
		}

		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logging.FromContext(ctx, logger).LogAttrs(ctx, level, "Request failed",
			slog.String("error_code", errCode),
			slog.Int("status_code", statusCode),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)

		return c.Status(statusCode).JSON(apiresponses.NewErrorResponse(message))
	}
}
