package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/debugutils"
	"github.com/narender/product-console/mock-backend/src/services"
)

type ProductHandler struct {
	service   services.ProductService
	simulator *debugutils.Simulator
	logger    *slog.Logger
}

func NewProductHandler(svc services.ProductService, simulator *debugutils.Simulator, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:   svc,
		simulator: simulator,
		logger:    logger,
	}
}

type AuthHandler struct {
	service   services.AuthService
	simulator *debugutils.Simulator
	logger    *slog.Logger
}

func NewAuthHandler(svc services.AuthService, simulator *debugutils.Simulator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   svc,
		simulator: simulator,
		logger:    logger,
	}
}

// productID reads the :id route parameter.
func productID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid product id: "+raw, err)
	}
	return id, nil
}
