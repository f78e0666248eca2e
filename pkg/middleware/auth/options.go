package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/truthlinked/go-sdk/pkg/middleware/httperror"
)

const (
	defaultWindow      = 5 * time.Minute
	defaultMaxBodySize = 1 << 20
)

// Config holds the middleware settings. Use the With* options to change them.
type Config struct {
	// Window is the maximum allowed clock skew between the X-Timestamp
	// header and server time, in either direction.
	Window time.Duration

	// ReplayProtection rejects a signature that was already accepted
	// within the freshness window.
	ReplayProtection bool

	// AllowUnauthenticated lets requests that fail verification through
	// to the next handler without auth state in the context, instead of
	// rejecting them. Handlers distinguish the two via StateFromContext.
	AllowUnauthenticated bool

	// MaxBodySize bounds how much request body is buffered for
	// signature verification.
	MaxBodySize int64

	Logger   *slog.Logger
	Registry prometheus.Registerer

	// Now is the clock used for freshness checks.
	Now func() time.Time

	// Skip exempts matching requests from authentication entirely.
	Skip func(r *http.Request) bool

	ErrorHandler func(ctx context.Context, log *slog.Logger, e *httperror.Error, w http.ResponseWriter, r *http.Request)
}

// WithWindow overrides the freshness window.
func WithWindow(window time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Window = window
	}
}

// WithoutReplayProtection disables the replay cache. Use only when an
// upstream layer already deduplicates requests.
func WithoutReplayProtection() func(*Config) {
	return func(cfg *Config) {
		cfg.ReplayProtection = false
	}
}

// WithAllowUnauthenticated passes unverified requests through instead of
// rejecting them. Handlers must check StateFromContext themselves.
func WithAllowUnauthenticated() func(*Config) {
	return func(cfg *Config) {
		cfg.AllowUnauthenticated = true
	}
}

// WithMaxBodySize overrides how much request body may be buffered for
// verification.
func WithMaxBodySize(size int64) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxBodySize = size
	}
}

// WithLogger sets the logger for the middleware.
func WithLogger(logger *slog.Logger) func(*Config) {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithMetrics registers verification metrics on the given registerer.
func WithMetrics(registry prometheus.Registerer) func(*Config) {
	return func(cfg *Config) {
		cfg.Registry = registry
	}
}

// WithClock overrides the clock used for freshness checks.
func WithClock(now func() time.Time) func(*Config) {
	return func(cfg *Config) {
		cfg.Now = now
	}
}

// WithSkipFunc exempts matching requests (for example health probes) from
// authentication.
func WithSkipFunc(skip func(r *http.Request) bool) func(*Config) {
	return func(cfg *Config) {
		cfg.Skip = skip
	}
}

// WithErrorHandler replaces how rejections are written to the client.
func WithErrorHandler(handler func(ctx context.Context, log *slog.Logger, e *httperror.Error, w http.ResponseWriter, r *http.Request)) func(*Config) {
	return func(cfg *Config) {
		cfg.ErrorHandler = handler
	}
}
