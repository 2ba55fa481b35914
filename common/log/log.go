package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/narender/product-console/common/config"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Global slog logger instance
var L *slog.Logger

// ParseLevel maps a config level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w. Text format uses tint; json uses the
// stdlib JSON handler. With telemetry enabled every record is also handed to
// the otelslog bridge, which exports through the global LoggerProvider.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	var console slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
	} else {
		console = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		})
	}

	if !cfg.OtelEnabled {
		return slog.New(console).With(slog.String("service", cfg.AppName))
	}
	bridge := otelslog.NewHandler(cfg.AppName)
	return slog.New(slogmulti.Fanout(console, bridge))
}

// Init creates the process logger, stores it in L and makes it the slog
// default.
func Init(cfg *config.Config, w io.Writer) *slog.Logger {
	L = New(cfg, w)
	slog.SetDefault(L)
	L.Debug("Logger initialized",
		slog.String("environment", cfg.Environment),
		slog.String("level", ParseLevel(cfg.LogLevel).String()),
		slog.String("format", cfg.LogFormat),
	)
	return L
}

// Discard returns a logger that drops everything. Handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
