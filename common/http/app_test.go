package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/product-console/common/apierrors"
	apiresponses "github.com/narender/product-console/common/apiresponses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	cfg := DefaultAppConfig("test", slog.New(slog.DiscardHandler))
	cfg.EnableOTel = false
	app := NewApp(cfg)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound, "Product not found", nil)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(apiresponses.NewSuccessResponse("fine"))
	})
	return app
}

func decode(t *testing.T, app *fiber.App, path string) (int, apiresponses.ApiResponse, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body apiresponses.ApiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body, resp.Header.Get(fiber.HeaderXRequestID)
}

func TestErrorHandlerMapsAppError(t *testing.T) {
	status, body, _ := decode(t, newTestApp(), "/missing")
	assert.Equal(t, 404, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Product not found", body.Message)
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	status, body, _ := decode(t, newTestApp(), "/boom")
	assert.Equal(t, 500, status)
	assert.Equal(t, "An unexpected error occurred", body.Message)
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	status, body, _ := decode(t, newTestApp(), "/panic")
	assert.Equal(t, 500, status)
	assert.False(t, body.Success)
}

func TestRequestIDHeader(t *testing.T) {
	status, body, requestID := decode(t, newTestApp(), "/ok")
	assert.Equal(t, 200, status)
	assert.True(t, body.Success)
	assert.Len(t, requestID, 36)
}

func TestUnknownRouteIs404(t *testing.T) {
	status, body, _ := decode(t, newTestApp(), "/nope")
	assert.Equal(t, 404, status)
	assert.NotEmpty(t, body.Message)
}
