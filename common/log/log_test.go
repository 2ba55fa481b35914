package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/narender/product-console/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.NewConfig(config.WithLogFormat("json"), config.WithLogLevel("warn")), &buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("page", 2))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(2), rec["page"])
	assert.Equal(t, "product-console", rec["service"])
}

func TestNewTextHasNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.NewConfig(config.WithLogFormat("text")), &buf)

	logger.Info("Products fetched", slog.Int("count", 3))

	out := buf.String()
	assert.Contains(t, out, "Products fetched")
	assert.Contains(t, out, "count=3")
	assert.NotContains(t, out, "\x1b[")
}
