package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narender/product-console/common/config"
	db "github.com/narender/product-console/common/db"
	"github.com/narender/product-console/common/debugutils"
	commonhttp "github.com/narender/product-console/common/http"
	"github.com/narender/product-console/mock-backend/src/models"
	"github.com/narender/product-console/mock-backend/src/repositories"
	"github.com/narender/product-console/mock-backend/src/services"
)

func newTestApp(t *testing.T, opts ...config.Option) *fiber.App {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	base := []config.Option{
		config.WithMockCredentials("admin", "admin123"),
		config.WithJWTSecret("test-secret"),
		config.WithDataFilePath(filepath.Join(t.TempDir(), "catalog.json")),
	}
	cfg := config.NewConfig(append(base, opts...)...)

	repo := repositories.NewProductRepository(db.NewFileDatabase(cfg.DataFilePath, logger), logger)
	auth, err := services.NewAuthService(cfg, logger)
	require.NoError(t, err)
	simulator := debugutils.NewSimulator(cfg, logger)

	app := commonhttp.NewApp(commonhttp.DefaultAppConfig("mock-backend-test", logger))
	RegisterRoutes(app,
		NewProductHandler(services.NewProductService(repo, logger), simulator, logger),
		NewAuthHandler(auth, simulator, logger),
		cfg.MockRequireAuth)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
}

func call(t *testing.T, app *fiber.App, method, target, body string, header ...string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp.StatusCode, env
}

type pageBody struct {
	Items         []models.Product `json:"items"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
}

func decodePage(t *testing.T, env envelope) pageBody {
	t.Helper()
	var page pageBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	return page
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, _ := call(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Log in successfully", env.Message)
	assert.NotEmpty(t, env.Token)

	status, env = call(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"nope1234"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid username or password", env.Message)
	assert.Empty(t, env.Token)

	status, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"username":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListProducts(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodGet, "/api/products?page=0&size=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	page := decodePage(t, env)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Size)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	status, env = call(t, app, http.MethodGet, "/api/products?search=canon&category=PRINTER&minPrice=100000&maxQuantity=50", "")
	require.Equal(t, http.StatusOK, status)
	page = decodePage(t, env)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Canon printer", page.Items[0].Name)
	assert.Equal(t, 10, page.Size)
}

func TestListProductsRejectsBadQueries(t *testing.T) {
	app := newTestApp(t)

	for name, query := range map[string]string{
		"inverted price":    "minPrice=10&maxPrice=1",
		"inverted quantity": "minQuantity=9&maxQuantity=2",
		"unknown category":  "category=TOASTER",
		"non numeric price": "minPrice=abc",
		"negative page":     "page=-1",
	} {
		t.Run(name, func(t *testing.T) {
			status, env := call(t, app, http.MethodGet, "/api/products?"+query, "")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestProductCRUD(t *testing.T) {
	app := newTestApp(t)
	body := `{"name":"iPad Air","price":500000,"quantity":7,"category":"TABLET","description":"  Light tablet  "}`

	status, env := call(t, app, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Product created successfully", env.Message)

	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, "Light tablet", created.Description)

	status, env = call(t, app, http.MethodGet, "/api/products/4", "")
	require.Equal(t, http.StatusOK, status)
	var got models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)

	status, env = call(t, app, http.MethodPut, "/api/products/4", strings.Replace(body, `"quantity":7`, `"quantity":9`, 1))
	require.Equal(t, http.StatusOK, status)
	var updated models.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 9, updated.Quantity)

	status, _ = call(t, app, http.MethodDelete, "/api/products/4", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, env = call(t, app, http.MethodGet, "/api/products/4", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product with id 4 not found", env.Message)
}

func TestProductMutationErrors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"short name", http.MethodPost, "/api/products", `{"name":"ab","price":1,"quantity":1,"category":"LAPTOP"}`, http.StatusBadRequest},
		{"quantity too large", http.MethodPost, "/api/products", `{"name":"Laptop","price":1,"quantity":100000,"category":"LAPTOP"}`, http.StatusBadRequest},
		{"bad category", http.MethodPost, "/api/products", `{"name":"Laptop","price":1,"quantity":1,"category":"Laptop"}`, http.StatusBadRequest},
		{"broken json", http.MethodPost, "/api/products", `{"name":`, http.StatusBadRequest},
		{"update missing", http.MethodPut, "/api/products/77", `{"name":"Laptop","price":1,"quantity":1,"category":"LAPTOP"}`, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/api/products/77", "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/api/products/abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, status)
			assert.False(t, env.Success)
		})
	}
}

func TestRequireToken(t *testing.T) {
	app := newTestApp(t, config.WithMockRequireAuth(true))

	status, _ := call(t, app, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodGet, "/api/products", "", fiber.HeaderAuthorization, "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, status)

	_, env := call(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)
	require.NotEmpty(t, env.Token)

	status, _ = call(t, app, http.MethodGet, "/api/products", "", fiber.HeaderAuthorization, "Bearer "+env.Token)
	assert.Equal(t, http.StatusOK, status)
}
