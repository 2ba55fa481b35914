// Package server assembles the mock backend: catalog repository, services,
// handlers and the fiber app serving them.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/product-console/common/config"
	db "github.com/narender/product-console/common/db"
	"github.com/narender/product-console/common/debugutils"
	commonhttp "github.com/narender/product-console/common/http"
	"github.com/narender/product-console/mock-backend/src/handlers"
	"github.com/narender/product-console/mock-backend/src/repositories"
	"github.com/narender/product-console/mock-backend/src/services"
)

// Backend is a wired mock backend. App is ready to Listen.
type Backend struct {
	App       *fiber.App
	Products  repositories.ProductRepository
	Simulator *debugutils.Simulator
}

// New wires a backend over the catalog file at cfg.DataFilePath.
func New(name string, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	database := db.NewFileDatabase(cfg.DataFilePath, logger)
	repo := repositories.NewProductRepository(database, logger)

	auth, err := services.NewAuthService(cfg, logger)
	if err != nil {
		return nil, err
	}
	simulator := debugutils.NewSimulator(cfg, logger)

	app := commonhttp.NewApp(commonhttp.DefaultAppConfig(name, logger))
	handlers.RegisterRoutes(app,
		handlers.NewProductHandler(services.NewProductService(repo, logger), simulator, logger),
		handlers.NewAuthHandler(auth, simulator, logger),
		cfg.MockRequireAuth)

	logger.Debug("Mock backend wired",
		slog.String("file_path", database.FilePath()),
		slog.Bool("require_auth", cfg.MockRequireAuth))

	return &Backend{
		App:       app,
		Products:  repo,
		Simulator: simulator,
	}, nil
}
