package handlers

import (
	"fmt"
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

// productBody parses and validates a create or update body.
func (h *ProductHandler) productBody(c *fiber.Ctx) (models.Product, error) {
	var req apirequests.ProductRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(c.UserContext(), "Invalid product body", slog.String(attributes.LogFieldError, parseErr.Error()))
		return models.Product{}, apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&req); validatorErr != nil {
		return models.Product{}, validatorErr
	}
	return models.ProductFromRequest(req), nil
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) (err error) {
	id, err := productID(c)
	if err != nil {
		return err
	}
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}

	product, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(
		apiresponses.NewSuccessResponse(product).WithMessage(fmt.Sprintf("Product with id %d retrieved successfully", id)))
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	defer commontrace.EndSpan(span, &err, nil)

	product, err := h.productBody(c)
	if err != nil {
		return err
	}
	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}

	created, err := h.service.Create(ctx, product)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(
		apiresponses.NewSuccessResponse(created).WithMessage("Product created successfully"))
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) (err error) {
	id, err := productID(c)
	if err != nil {
		return err
	}
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	product, err := h.productBody(c)
	if err != nil {
		return err
	}
	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}

	updated, err := h.service.Update(ctx, id, product)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(
		apiresponses.NewSuccessResponse(updated).WithMessage(fmt.Sprintf("Product with id %d updated successfully", id)))
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) (err error) {
	id, err := productID(c)
	if err != nil {
		return err
	}
	ctx, span := commontrace.StartSpan(c.UserContext(), attributes.AttrAppProductIDKey.Int64(id))
	defer commontrace.EndSpan(span, &err, nil)

	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
