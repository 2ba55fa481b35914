package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	apirequests "github.com/narender/product-console/common/apirequests"
	apiresponses "github.com/narender/product-console/common/apiresponses"
	"github.com/narender/product-console/common/telemetry/attributes"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/common/validator"
	"github.com/narender/product-console/mock-backend/src/models"
)

func (h *ProductHandler) ListProducts(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	defer commontrace.EndSpan(span, &err, nil)

	var req apirequests.ProductFilterRequest
	if parseErr := c.QueryParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid product list query", slog.String(attributes.LogFieldError, parseErr.Error()))
		return apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid query parameters", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&req); validatorErr != nil {
		return validatorErr
	}

	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}

	page, err := h.service.List(ctx, models.FilterFromRequest(req), req.Page, req.Size)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(
		apiresponses.NewSuccessResponse(page).WithMessage("Products retrieved successfully"))
}
