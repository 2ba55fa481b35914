package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/narender/product-console/common/middleware"
)

// AppConfig holds configuration for the Fiber app
type AppConfig struct {
	Name         string
	Logger       *slog.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
	EnableOTel   bool
	// paths the request logger ignores
	SkipLogPaths []string
}

// DefaultAppConfig returns default app configuration
func DefaultAppConfig(name string, logger *slog.Logger) AppConfig {
	return AppConfig{
		Name:         name,
		Logger:       logger,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		EnableOTel:   true,
		SkipLogPaths: []string{"/health"},
	}
}

// NewApp creates a Fiber app with the shared error handler and middleware
// chain: otel, recover, request id, CORS, context logger, request logger.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(cfg.Logger),
	})

	if cfg.EnableOTel {
		app.Use(middleware.OtelMiddleware())
	}
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(middleware.ContextLoggerMiddleware(cfg.Logger))
	app.Use(middleware.RequestLoggerMiddleware(cfg.Logger, cfg.SkipLogPaths...))

	return app
}
