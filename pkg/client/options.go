package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds client configuration. Use the With* options rather than
// building a Config by hand.
type Config struct {
	// Timeout bounds a whole request including body read.
	Timeout time.Duration
	// ConnectTimeout bounds dialing the server.
	ConnectTimeout time.Duration
	// UserAgent overrides the default truthlinked-go-sdk user agent.
	UserAgent string
	// Headers are extra headers sent with every request.
	Headers http.Header
	// RetryPolicy controls retry behavior for transient failures.
	RetryPolicy RetryPolicy
	// Logger receives request/response/error logs. Nil means slog.Default.
	Logger *slog.Logger
	// LogRequests enables per-request debug logging (with redaction).
	LogRequests bool
	// MaxLogBodySize caps logged body size in bytes; larger bodies are elided.
	MaxLogBodySize int
	// HTTPClient replaces the built-in pooled client entirely. Timeout,
	// ConnectTimeout and pooling settings are ignored when set.
	HTTPClient *http.Client
	// AllowHTTP permits plain-HTTP base URLs. Testing only; production
	// clients reject anything but https.
	AllowHTTP bool
}

// WithTimeout sets the overall request timeout.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithConnectTimeout sets the dial timeout.
func WithConnectTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.ConnectTimeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) func(*Config) {
	return func(cfg *Config) {
		cfg.UserAgent = userAgent
	}
}

// WithHeader adds a custom header sent with every request.
func WithHeader(name, value string) func(*Config) {
	return func(cfg *Config) {
		if cfg.Headers == nil {
			cfg.Headers = http.Header{}
		}
		cfg.Headers.Set(name, value)
	}
}

// WithRetryPolicy replaces the retry policy.
func WithRetryPolicy(policy RetryPolicy) func(*Config) {
	return func(cfg *Config) {
		cfg.RetryPolicy = policy
	}
}

// WithRetries sets only the attempt budget, keeping the rest of the policy.
func WithRetries(maxAttempts int) func(*Config) {
	return func(cfg *Config) {
		cfg.RetryPolicy.MaxAttempts = maxAttempts
	}
}

// WithLogger sets the logger used for request/response/error logs.
func WithLogger(logger *slog.Logger) func(*Config) {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithRequestLogging enables per-request debug logging. Credentials in
// headers and bodies are redacted before they reach the logger.
func WithRequestLogging() func(*Config) {
	return func(cfg *Config) {
		cfg.LogRequests = true
	}
}

// WithMaxLogBodySize caps the body size included in request logs.
func WithMaxLogBodySize(size int) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxLogBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) func(*Config) {
	return func(cfg *Config) {
		cfg.HTTPClient = httpClient
	}
}

// WithAllowHTTP permits plain-HTTP base URLs. For tests against httptest
// servers only; never set this in production.
func WithAllowHTTP() func(*Config) {
	return func(cfg *Config) {
		cfg.AllowHTTP = true
	}
}
