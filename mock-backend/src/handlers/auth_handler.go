package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/product-console/common/apierrors"
	apirequests "github.com/narender/product-console/common/apirequests"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/validator"
	"github.com/narender/product-console/mock-backend/src/services"
)

// LoginResponse is the login body. Unlike the other endpoints it is not
// wrapped in an ApiResponse.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()

	var req apirequests.LoginRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid login request format", slog.String(attributes.LogFieldError, parseErr.Error()))
		return apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&req); validatorErr != nil {
		return validatorErr
	}

	if err := h.simulator.Simulate(ctx); err != nil {
		return err
	}

	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(LoginResponse{
		Success: true,
		Message: services.MsgLoginSuccess,
		Token:   token,
	})
}

// RequireToken rejects requests without a valid bearer token issued by
// Login. The claims are stored in Locals under "claims".
func (h *AuthHandler) RequireToken(c *fiber.Ctx) error {
	ctx := c.UserContext()

	scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return apierrors.NewBusinessError(apierrors.ErrCodeUnauthorized, "Missing bearer token", nil)
	}

	claims, err := h.service.ParseToken(ctx, strings.TrimSpace(token))
	if err != nil {
		return err
	}
	c.Locals("claims", claims)
	return c.Next()
}
