// Package auth verifies signed requests on the server side.
//
// Every protected request must carry an X-Timestamp header with the Unix
// time it was signed and an X-Signature header with the HMAC over the
// canonical request. The middleware checks the timestamp against a
// freshness window, verifies the signature against each configured
// credential, and optionally rejects signatures it has already accepted.
// All rejections answer with a uniform 401 so probing clients learn
// nothing about which check failed; the specific reason goes to logs and
// metrics only.
package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-softwarelab/common/pkg/to"
	"github.com/truthlinked/go-sdk/pkg/constants"
	"github.com/truthlinked/go-sdk/pkg/internal/logging"
	"github.com/truthlinked/go-sdk/pkg/middleware/httperror"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

// Rejection reasons reported in logs and metrics. Clients always see the
// same 401 regardless of reason.
const (
	reasonMissingTimestamp   = "missing_timestamp"
	reasonMalformedTimestamp = "malformed_timestamp"
	reasonStaleTimestamp     = "stale_timestamp"
	reasonMissingSignature   = "missing_signature"
	reasonInvalidSignature   = "invalid_signature"
	reasonReplayedSignature  = "replayed_signature"
	reasonBodyTooLarge       = "body_too_large"
)

var errAuthenticationFailed = errors.New("authentication failed")

type verifier struct {
	keyID  string
	signer *signing.RequestSigner
}

// Middleware verifies request signatures against a set of accepted
// credentials.
type Middleware struct {
	verifiers            []verifier
	window               time.Duration
	maxBodySize          int64
	allowUnauthenticated bool
	replay               *replayGuard
	metrics              *metrics
	log                  *slog.Logger
	now                  func() time.Time
	skip                 func(r *http.Request) bool
	errorHandler         func(ctx context.Context, log *slog.Logger, e *httperror.Error, w http.ResponseWriter, r *http.Request)
}

// New builds a middleware accepting requests signed with any of the given
// license keys. Several keys may be configured at once so credentials can
// be rotated without rejecting traffic signed with the outgoing one.
func New(licenseKeys []string, opts ...func(*Config)) (*Middleware, error) {
	cfg := to.OptionsWithDefault(Config{
		Window:           defaultWindow,
		ReplayProtection: true,
		MaxBodySize:      defaultMaxBodySize,
		Logger:           slog.Default(),
		Now:              time.Now,
		ErrorHandler:     httperror.DefaultErrorHandler,
	}, opts...)

	if len(licenseKeys) == 0 {
		return nil, errors.New("at least one license key is required")
	}

	verifiers := make([]verifier, 0, len(licenseKeys))
	for _, key := range licenseKeys {
		license, err := signing.NewLicenseKey(key)
		if err != nil {
			return nil, err
		}
		keyID := license.Redacted()
		// The handle only exists to compute the redacted form; don't keep
		// another live copy of the secret around.
		license.Destroy()

		signer, err := signing.NewRequestSigner(key)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, verifier{
			keyID:  keyID,
			signer: signer,
		})
	}

	m := &Middleware{
		verifiers:            verifiers,
		window:               cfg.Window,
		maxBodySize:          cfg.MaxBodySize,
		allowUnauthenticated: cfg.AllowUnauthenticated,
		log:                  logging.Child(cfg.Logger, "auth-middleware"),
		now:                  cfg.Now,
		skip:                 cfg.Skip,
		errorHandler:         cfg.ErrorHandler,
	}

	if cfg.ReplayProtection {
		m.replay = newReplayGuard(cfg.Window)
	}

	if cfg.Registry != nil {
		metrics, err := newMetrics(cfg.Registry)
		if err != nil {
			return nil, err
		}
		m.metrics = metrics
	}

	return m, nil
}

// Handler wraps next with signature verification.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip != nil && m.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		start := m.now()
		log := m.log.With(slog.String("path", r.URL.Path), slog.String("method", r.Method))

		state, reason := m.verify(r)
		if reason != "" {
			m.metrics.observe(resultRejected, reason, m.now().Sub(start))

			if m.allowUnauthenticated {
				log.Debug("passing through unverified request", slog.String("reason", reason))
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("rejected unauthenticated request", slog.String("reason", reason))

			m.errorHandler(r.Context(), log, &httperror.Error{
				StatusCode: http.StatusUnauthorized,
				Message:    "authentication required",
				Err:        errAuthenticationFailed,
			}, w, r)
			return
		}

		m.metrics.observe(resultAccepted, "", m.now().Sub(start))
		log.Debug("request authenticated", slog.String("keyID", state.KeyID))

		next.ServeHTTP(w, r.WithContext(withState(r.Context(), state)))
	})
}

// verify runs all checks in a fixed order and returns either the
// authenticated state or the rejection reason.
func (m *Middleware) verify(r *http.Request) (*State, string) {
	rawTimestamp := r.Header.Get(constants.HeaderTimestamp)
	if rawTimestamp == "" {
		return nil, reasonMissingTimestamp
	}

	signature := r.Header.Get(constants.HeaderSignature)
	if signature == "" {
		return nil, reasonMissingSignature
	}

	timestamp, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return nil, reasonMalformedTimestamp
	}

	// Compare in whole seconds; converting an attacker-controlled skew to
	// a Duration could overflow int64 nanoseconds and wrap past the window.
	skew := m.now().Unix() - timestamp
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(m.window/time.Second) {
		return nil, reasonStaleTimestamp
	}

	body, ok := m.readBody(r)
	if !ok {
		return nil, reasonBodyTooLarge
	}

	matched := ""
	for _, v := range m.verifiers {
		if v.signer.Verify(r.Method, r.URL.Path, body, timestamp, signature) {
			matched = v.keyID
			break
		}
	}
	if matched == "" {
		return nil, reasonInvalidSignature
	}

	// Replay check runs after signature verification so forged requests
	// cannot poison the cache.
	if m.replay != nil && m.replay.remember(signature) {
		return nil, reasonReplayedSignature
	}

	return &State{KeyID: matched, Timestamp: time.Unix(timestamp, 0)}, ""
}

// readBody buffers the request body for verification and restores it so
// the next handler can read it again.
func (m *Middleware) readBody(r *http.Request) ([]byte, bool) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, true
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, m.maxBodySize+1))
	if err != nil || int64(len(body)) > m.maxBodySize {
		return nil, false
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, true
}
