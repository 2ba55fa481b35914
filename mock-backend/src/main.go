package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/globals"
	"github.com/narender/product-console/common/lifecycle"
	"github.com/narender/product-console/common/telemetry/metric"
	"github.com/narender/product-console/mock-backend/src/server"
)

const serviceName = "mock-backend"

func main() {
	var configFile string
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Development backend serving the product catalog REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional YAML/JSON config file, hot reloaded")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Mock backend stopped with error")
		os.Exit(lifecycle.ExitCode(err))
	}
}

func run(ctx context.Context, configFile string) error {
	// --- Configuration, logging and telemetry ---
	if err := globals.Init(ctx, configFile, serviceName); err != nil {
		return err
	}
	cfg := globals.Cfg()
	logger := globals.Logger()
	cfg.Log()

	// --- Repository, services, handlers ---
	backend, err := server.New(serviceName, cfg, logger)
	if err != nil {
		return err
	}
	app := backend.App

	unregisterGauge, err := metric.RegisterCatalogSizeGauge(backend.Products.Count)
	if err != nil {
		logger.Warn("Catalog size gauge unavailable", slog.Any("error", err))
	} else {
		defer unregisterGauge()
	}

	// Only the delay settings are applied live; everything else needs a restart.
	config.NewLoader(configFile).Watch(func(next *config.Config) {
		backend.Simulator.Update(next)
		logger.Info("Delay simulation reconfigured",
			slog.Bool("enabled", next.SimulateDelayEnabled),
			slog.Int("min_ms", next.SimulateDelayMinMs),
			slog.Int("max_ms", next.SimulateDelayMaxMs))
	})

	// --- Serve until a signal arrives ---
	addr := fmt.Sprintf(":%s", cfg.MockBackendPort)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting to listen", slog.String("address", addr), slog.Bool("require_auth", cfg.MockRequireAuth))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("server listener failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return lifecycle.WaitForGracefulShutdown(gctx, cfg,
			&lifecycle.FiberShutdownAdapter{App: app},
			globals.TelemetryShutdown())
	})
	return g.Wait()
}
