package logging

import (
	"io"
	"strings"
	"time"

	"github.com/narender/product-console/common/config"
	"github.com/sirupsen/logrus"
)

// SetupLogrus configures the standard logrus logger used for bootstrap,
// telemetry setup and shutdown messages. With telemetry enabled an OtelHook
// forwards those entries too.
func SetupLogrus(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.StandardLogger()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(cfg.LogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano})
	}
	logger.SetOutput(w)

	if cfg.OtelEnabled {
		logger.AddHook(NewOtelHook())
	}

	logger.Debugf("Logrus initialized with level '%s' and format '%s'.", logger.GetLevel(), cfg.LogFormat)
	return logger
}
