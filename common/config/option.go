package config

import "time"

// Option is a function that configures a Config
type Option func(*Config)

// WithAppName sets the application name
func WithAppName(name string) Option {
	return func(c *Config) {
		c.AppName = name
	}
}

// WithServiceVersion sets the service version
func WithServiceVersion(version string) Option {
	return func(c *Config) {
		c.ServiceVersion = version
	}
}

// WithOtelEndpoint sets the OpenTelemetry exporter endpoint
func WithOtelEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.OtelEndpoint = endpoint
	}
}

// WithOtelInsecure sets whether the OpenTelemetry exporter uses an insecure connection
func WithOtelInsecure(insecure bool) Option {
	return func(c *Config) {
		c.OtelInsecure = insecure
	}
}

// WithOtelSampleRatio sets the OpenTelemetry sampling ratio
func WithOtelSampleRatio(ratio float64) Option {
	return func(c *Config) {
		c.OtelSampleRatio = ratio
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithMockBackendPort sets the mock backend listen port
func WithMockBackendPort(port string) Option {
	return func(c *Config) {
		c.MockBackendPort = port
	}
}

// WithDataFilePath sets the data file path
func WithDataFilePath(path string) Option {
	return func(c *Config) {
		c.DataFilePath = path
	}
}

// WithAPIBaseURL sets the backend base URL used by the console
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.APIBaseURL = baseURL
	}
}

func WithAPIToken(token string) Option {
	return func(c *Config) {
		c.APIToken = token
	}
}

// WithHTTPTimeout sets the client timeout. Zero disables it.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = d
	}
}

func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithRedirectDelay sets how long the login form waits before leaving
func WithRedirectDelay(d time.Duration) Option {
	return func(c *Config) {
		c.RedirectDelay = d
	}
}

func WithOtelEnabled(enabled bool) Option {
	return func(c *Config) {
		c.OtelEnabled = enabled
	}
}

// WithMockCredentials sets the single account accepted by the mock backend
func WithMockCredentials(username, password string) Option {
	return func(c *Config) {
		c.MockUsername = username
		c.MockPassword = password
	}
}

// WithJWTSecret sets the HMAC key for mock backend tokens
func WithJWTSecret(secret string) Option {
	return func(c *Config) {
		c.JWTSecret = secret
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.TokenTTL = ttl
	}
}

// WithMockRequireAuth makes the mock backend reject product requests
// without a valid bearer token
func WithMockRequireAuth(required bool) Option {
	return func(c *Config) {
		c.MockRequireAuth = required
	}
}
