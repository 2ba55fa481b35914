package globals

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/log"
	"github.com/narender/product-console/common/logging"
	"github.com/narender/product-console/common/telemetry"
)

var (
	cfg               *config.Config
	logger            *slog.Logger
	telemetryShutdown telemetry.ShutdownFunc
	// once ensures that initialization logic runs exactly once.
	once sync.Once
	err  error
)

// Init loads configuration, then sets up logrus, telemetry and the slog
// logger, in that order. serviceName labels telemetry. Later calls return
// the first result.
func Init(ctx context.Context, configFile, serviceName string) error {
	once.Do(func() {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			err = fmt.Errorf("failed to load config during init: %w", err)
			return
		}

		logging.SetupLogrus(cfg, os.Stderr)

		telemetryShutdown, err = telemetry.InitTelemetry(ctx, cfg, serviceName)
		if err != nil {
			err = fmt.Errorf("failed to initialize telemetry setup during init: %w", err)
			return
		}

		logger = log.Init(cfg, os.Stderr)
	})
	return err
}

// Cfg returns the loaded configuration, panicking if Init hasn't been successfully called.
func Cfg() *config.Config {
	if cfg == nil {
		panic("configuration not initialized: call globals.Init() first and check error")
	}
	return cfg
}

// Logger returns the initialized logger, panicking if Init hasn't been successfully called.
func Logger() *slog.Logger {
	if logger == nil {
		panic("logger not initialized: call globals.Init() first and check error")
	}
	return logger
}

// TelemetryShutdown returns the flush function from telemetry setup. It is
// never nil after a successful Init.
func TelemetryShutdown() telemetry.ShutdownFunc {
	if telemetryShutdown == nil {
		return func(context.Context) error { return nil }
	}
	return telemetryShutdown
}
