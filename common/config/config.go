package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Initialize a minimal logger for config loading phase
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

// Keys double as environment variable names once upper-cased.
const (
	keyAppName                = "app_name"
	keyServiceVersion         = "service_version"
	keyEnvironment            = "environment"
	keyLogLevel               = "log_level"
	keyLogFormat              = "log_format"
	keyAPIBaseURL             = "api_base_url"
	keyAPIToken               = "api_token"
	keyHTTPTimeoutMS          = "http_timeout_ms"
	keyPageSize               = "page_size"
	keyRedirectDelayMS        = "redirect_delay_ms"
	keyOtelEnabled            = "otel_enabled"
	keyOtelEndpoint           = "otel_exporter_otlp_endpoint"
	keyOtelInsecure           = "otel_exporter_insecure"
	keyOtelSampleRatio        = "otel_sample_ratio"
	keyOtelBatchTimeoutMS     = "otel_batch_timeout_ms"
	keyMockBackendPort        = "mock_backend_port"
	keyDataFilePath           = "data_file_path"
	keyMockUsername           = "mock_username"
	keyMockPassword           = "mock_password"
	keyJWTSecret              = "jwt_secret"
	keyTokenTTLSec            = "token_ttl_sec"
	keyMockRequireAuth        = "mock_require_auth"
	keySimulateDelayEnabled   = "simulate_delay_enabled"
	keySimulateDelayMinMs     = "simulate_delay_min_ms"
	keySimulateDelayMaxMs     = "simulate_delay_max_ms"
	keyShutdownTotalTimeout   = "shutdown_total_timeout_sec"
	keyShutdownServerTimeout  = "shutdown_server_timeout_sec"
	keyShutdownOtelMinTimeout = "shutdown_otel_min_timeout_sec"
)

var (
	allowedLogLevels    = []string{"debug", "info", "warn", "error"}
	allowedLogFormats   = []string{"text", "json"}
	allowedEnvironments = []string{"development", "test", "production"}
)

// Config holds all configuration settings
type Config struct {
	// Service information
	AppName        string `yaml:"app_name"`
	ServiceVersion string `yaml:"service_version"`
	Environment    string `yaml:"environment"`

	// Logging configuration
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Backend access used by the console
	APIBaseURL    string        `yaml:"api_base_url"`
	APIToken      string        `yaml:"-"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	PageSize      int           `yaml:"page_size"`
	RedirectDelay time.Duration `yaml:"redirect_delay"`

	// OpenTelemetry configuration
	OtelEnabled      bool          `yaml:"otel_enabled"`
	OtelEndpoint     string        `yaml:"otel_endpoint"`
	OtelInsecure     bool          `yaml:"otel_insecure"`
	OtelSampleRatio  float64       `yaml:"otel_sample_ratio"`
	OtelBatchTimeout time.Duration `yaml:"otel_batch_timeout"`

	// Mock backend settings
	MockBackendPort string        `yaml:"mock_backend_port"`
	DataFilePath    string        `yaml:"data_file_path"`
	MockUsername    string        `yaml:"mock_username"`
	MockPassword    string        `yaml:"-"`
	JWTSecret       string        `yaml:"-"`
	TokenTTL        time.Duration `yaml:"token_ttl"`
	// product routes demand a bearer token issued by the login endpoint
	MockRequireAuth bool `yaml:"mock_require_auth"`

	SimulateDelayEnabled bool `yaml:"simulate_delay_enabled"`
	SimulateDelayMinMs   int  `yaml:"simulate_delay_min_ms"`
	SimulateDelayMaxMs   int  `yaml:"simulate_delay_max_ms"`

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration `yaml:"shutdown_total_timeout"`
	ShutdownServerTimeout  time.Duration `yaml:"shutdown_server_timeout"`
	ShutdownOtelMinTimeout time.Duration `yaml:"shutdown_otel_min_timeout"`
}

// NewConfig creates a new Config with the provided options
func NewConfig(opts ...Option) *Config {
	c := NewDefaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Loader reads configuration through viper and keeps the instance around
// so the backing file can be watched.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader prepares a viper instance with defaults and environment binding.
// configFile is optional.
func NewLoader(configFile string) *Loader {
	v := viper.New()
	setDefaults(v, NewDefaultConfig())
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	return &Loader{v: v, configFile: configFile}
}

// LoadConfig loads .env (if present), the optional config file and the
// environment, then validates the result.
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		configLogger.WithError(err).Warn("Failed to load .env file")
	}
	return NewLoader(configFile).Load()
}

// LoadFromReader loads configuration from a reader in the given format
// ("yaml", "json", ...). Environment variables still apply.
func LoadFromReader(r io.Reader, configType string) (*Config, error) {
	l := NewLoader("")
	l.v.SetConfigType(configType)
	if err := l.v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return l.build()
}

// Load reads the config file (if any) and builds a validated Config.
func (l *Loader) Load() (*Config, error) {
	if l.configFile != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
	}
	return l.build()
}

func (l *Loader) build() (*Config, error) {
	cfg := fromViper(l.v)
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Watch re-reads the config file whenever it changes and passes the new
// configuration to fn. Invalid revisions are logged and skipped.
func (l *Loader) Watch(fn func(*Config)) {
	if l.configFile == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		configLogger.WithField("file", e.Name).Info("Config file changed")
		cfg, err := l.build()
		if err != nil {
			configLogger.WithError(err).Warn("Ignoring invalid config change")
			return
		}
		fn(cfg)
	})
	l.v.WatchConfig()
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(keyAppName, d.AppName)
	v.SetDefault(keyServiceVersion, d.ServiceVersion)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyLogFormat, d.LogFormat)
	v.SetDefault(keyAPIBaseURL, d.APIBaseURL)
	v.SetDefault(keyAPIToken, d.APIToken)
	v.SetDefault(keyHTTPTimeoutMS, d.HTTPTimeout.Milliseconds())
	v.SetDefault(keyPageSize, d.PageSize)
	v.SetDefault(keyRedirectDelayMS, d.RedirectDelay.Milliseconds())
	v.SetDefault(keyOtelEnabled, d.OtelEnabled)
	v.SetDefault(keyOtelEndpoint, d.OtelEndpoint)
	v.SetDefault(keyOtelInsecure, d.OtelInsecure)
	v.SetDefault(keyOtelSampleRatio, d.OtelSampleRatio)
	v.SetDefault(keyOtelBatchTimeoutMS, d.OtelBatchTimeout.Milliseconds())
	v.SetDefault(keyMockBackendPort, d.MockBackendPort)
	v.SetDefault(keyDataFilePath, d.DataFilePath)
	v.SetDefault(keyMockUsername, d.MockUsername)
	v.SetDefault(keyMockPassword, d.MockPassword)
	v.SetDefault(keyJWTSecret, d.JWTSecret)
	v.SetDefault(keyTokenTTLSec, int(d.TokenTTL.Seconds()))
	v.SetDefault(keyMockRequireAuth, d.MockRequireAuth)
	v.SetDefault(keySimulateDelayEnabled, d.SimulateDelayEnabled)
	v.SetDefault(keySimulateDelayMinMs, d.SimulateDelayMinMs)
	v.SetDefault(keySimulateDelayMaxMs, d.SimulateDelayMaxMs)
	v.SetDefault(keyShutdownTotalTimeout, int(d.ShutdownTotalTimeout.Seconds()))
	v.SetDefault(keyShutdownServerTimeout, int(d.ShutdownServerTimeout.Seconds()))
	v.SetDefault(keyShutdownOtelMinTimeout, int(d.ShutdownOtelMinTimeout.Seconds()))
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:        v.GetString(keyAppName),
		ServiceVersion: v.GetString(keyServiceVersion),
		Environment:    strings.ToLower(v.GetString(keyEnvironment)),

		LogLevel:  strings.ToLower(v.GetString(keyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(keyLogFormat)),

		APIBaseURL:    strings.TrimRight(v.GetString(keyAPIBaseURL), "/"),
		APIToken:      v.GetString(keyAPIToken),
		HTTPTimeout:   time.Duration(v.GetInt64(keyHTTPTimeoutMS)) * time.Millisecond,
		PageSize:      v.GetInt(keyPageSize),
		RedirectDelay: time.Duration(v.GetInt64(keyRedirectDelayMS)) * time.Millisecond,

		OtelEnabled:      v.GetBool(keyOtelEnabled),
		OtelEndpoint:     v.GetString(keyOtelEndpoint),
		OtelInsecure:     v.GetBool(keyOtelInsecure),
		OtelSampleRatio:  v.GetFloat64(keyOtelSampleRatio),
		OtelBatchTimeout: time.Duration(v.GetInt64(keyOtelBatchTimeoutMS)) * time.Millisecond,

		MockBackendPort: v.GetString(keyMockBackendPort),
		DataFilePath:    v.GetString(keyDataFilePath),
		MockUsername:    v.GetString(keyMockUsername),
		MockPassword:    v.GetString(keyMockPassword),
		JWTSecret:       v.GetString(keyJWTSecret),
		TokenTTL:        time.Duration(v.GetInt64(keyTokenTTLSec)) * time.Second,
		MockRequireAuth: v.GetBool(keyMockRequireAuth),

		SimulateDelayEnabled: v.GetBool(keySimulateDelayEnabled),
		SimulateDelayMinMs:   v.GetInt(keySimulateDelayMinMs),
		SimulateDelayMaxMs:   v.GetInt(keySimulateDelayMaxMs),

		ShutdownTotalTimeout:   time.Duration(v.GetInt64(keyShutdownTotalTimeout)) * time.Second,
		ShutdownServerTimeout:  time.Duration(v.GetInt64(keyShutdownServerTimeout)) * time.Second,
		ShutdownOtelMinTimeout: time.Duration(v.GetInt64(keyShutdownOtelMinTimeout)) * time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() []error {
	validator := NewValidator()

	// Validate required fields
	validator.RequireNonEmpty("AppName", c.AppName)
	validator.RequireNonEmpty("ServiceVersion", c.ServiceVersion)
	validator.RequireNonEmpty("APIBaseURL", c.APIBaseURL)
	validator.RequireNonEmpty("MockBackendPort", c.MockBackendPort)

	// Validate values in allowed sets
	validator.RequireOneOf("LogLevel", c.LogLevel, allowedLogLevels)
	validator.RequireOneOf("LogFormat", c.LogFormat, allowedLogFormats)
	validator.RequireOneOf("Environment", c.Environment, allowedEnvironments)

	validator.RequireHTTPURL("APIBaseURL", c.APIBaseURL)

	// Validate numeric ranges
	if port, err := strconv.Atoi(c.MockBackendPort); err == nil {
		RequireInRange(validator, "MockBackendPort", port, 1, 65535)
	} else if c.MockBackendPort != "" {
		validator.AddError("MockBackendPort", "must be a valid integer")
	}
	RequireInRange(validator, "PageSize", c.PageSize, 1, 100)
	RequireInRange(validator, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)
	RequireInRange(validator, "HTTPTimeout", c.HTTPTimeout, 0, time.Hour)
	RequireInRange(validator, "RedirectDelay", c.RedirectDelay, 0, time.Minute)

	if c.OtelEnabled {
		validator.RequireNonEmpty("OtelEndpoint", c.OtelEndpoint)
	}
	if c.SimulateDelayEnabled && c.SimulateDelayMinMs > c.SimulateDelayMaxMs {
		validator.AddError("SimulateDelayMinMs", "must not exceed SimulateDelayMaxMs")
	}

	return validator.Errors()
}

// Log logs the current configuration
func (c *Config) Log() {
	configLogger.WithFields(logrus.Fields{
		"app_name":          c.AppName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"api_base_url":      c.APIBaseURL,
		"page_size":         c.PageSize,
		"otel_enabled":      c.OtelEnabled,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_sample_ratio": c.OtelSampleRatio,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"port":              c.MockBackendPort,
		"data_file_path":    c.DataFilePath,
		"shutdown_total":    c.ShutdownTotalTimeout,
		"shutdown_server":   c.ShutdownServerTimeout,
		"shutdown_otel":     c.ShutdownOtelMinTimeout,
	}).Info("Configuration loaded")
}
