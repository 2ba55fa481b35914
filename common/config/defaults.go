package config

import "time"

// NewDefaultConfig provides a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		// Service information
		AppName:        "product-console",
		ServiceVersion: "dev",
		Environment:    "development",

		// Logging configuration
		LogLevel:  "info",
		LogFormat: "text",

		// Backend access
		APIBaseURL:    "http://localhost:8080",
		HTTPTimeout:   0,
		PageSize:      10,
		RedirectDelay: 5000 * time.Millisecond,

		// OpenTelemetry configuration
		OtelEnabled:      false,
		OtelEndpoint:     "localhost:4317",
		OtelInsecure:     true,
		OtelSampleRatio:  1.0,
		OtelBatchTimeout: 5 * time.Second,

		// Mock backend
		MockBackendPort: "8080",
		DataFilePath:    "mock_products_v1.json",
		MockUsername:    "admin",
		MockPassword:    "admin123",
		JWTSecret:       "change-me",
		TokenTTL:        time.Hour,
		MockRequireAuth: false,

		SimulateDelayEnabled: false,
		SimulateDelayMinMs:   250,
		SimulateDelayMaxMs:   250,

		// Shutdown timeouts
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,
	}
}
