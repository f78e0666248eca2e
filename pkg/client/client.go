// Package client is the Truthlinked Authority Fabric API client. It signs
// every outgoing request with the core signing subsystem (pkg/signing),
// retries transient failures with exponential backoff, and keeps credential
// material out of logs and error messages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-softwarelab/common/pkg/to"
	"github.com/google/uuid"

	"github.com/truthlinked/go-sdk/pkg/constants"
	"github.com/truthlinked/go-sdk/pkg/internal/logging"
	"github.com/truthlinked/go-sdk/pkg/signing"
)

// Version is the SDK version reported in the default User-Agent.
const Version = "0.1.0"

const defaultUserAgent = "truthlinked-go-sdk/" + Version

// Client talks to the Authority Fabric API. One client per logical session:
// it owns a LicenseKey handle and a RequestSigner, both destroyed by Close.
//
// All operation methods are safe for concurrent use; Close racing in-flight
// calls is not (single-owner discipline, as everywhere in the signing core).
type Client struct {
	httpClient  *http.Client
	baseURL     string
	licenseKey  *signing.LicenseKey
	signer      *signing.RequestSigner
	retryPolicy RetryPolicy
	log         *slog.Logger
	logRequests bool
	maxLogBody  int
	userAgent   string
	headers     http.Header
}

// New creates a client for the given API base URL and license key.
// The base URL must use HTTPS; plain HTTP is rejected at construction unless
// the testing-only WithAllowHTTP option is set.
func New(baseURL, licenseKey string, opts ...func(*Config)) (*Client, error) {
	cfg := to.OptionsWithDefault(Config{
		Timeout:        30 * time.Second,
		ConnectTimeout: 10 * time.Second,
		UserAgent:      defaultUserAgent,
		RetryPolicy:    DefaultRetryPolicy(),
		MaxLogBodySize: 1024,
	}, opts...)

	if !cfg.AllowHTTP && !strings.HasPrefix(baseURL, "https://") {
		return nil, &InvalidRequestError{Message: "base URL must use HTTPS"}
	}

	key, err := signing.NewLicenseKey(licenseKey)
	if err != nil {
		return nil, err
	}

	signer, err := signing.NewRequestSigner(licenseKey)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		licenseKey:  key,
		signer:      signer,
		retryPolicy: cfg.RetryPolicy,
		log:         logging.Child(cfg.Logger, "truthlinked-client"),
		logRequests: cfg.LogRequests,
		maxLogBody:  cfg.MaxLogBodySize,
		userAgent:   cfg.UserAgent,
		headers:     cfg.Headers,
	}, nil
}

// Close destroys the held license key and signing key. Idempotent; any call
// after Close fails with ErrClientClosed.
func (c *Client) Close() {
	c.licenseKey.Destroy()
	c.signer.Destroy()
}

// Health checks the API health endpoint. It needs no bearer credential but
// is still signed like every other request.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, constants.HealthPath, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeToken exchanges an SSO token for an Authority Fabric token.
// Requires a Professional tier license or higher. The nonce must be unique
// per request (see signing.GenerateNonce) and the channel binding should be
// derived from the TLS channel.
func (c *Client) ExchangeToken(ctx context.Context, request TokenRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, constants.TokensPath, request, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateToken validates a previously issued Authority Fabric token.
func (c *Client) ValidateToken(ctx context.Context, tokenID string) (*ValidateResponse, error) {
	var out ValidateResponse
	if err := c.do(ctx, http.MethodGet, constants.TokenValidatePath(tokenID), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShadowDecisions lists divergences between IAM decisions and Authority
// Fabric policy evaluation. Decisions with BreachPrevented set mark cases
// where enforcement would have stopped a breach.
func (c *Client) ShadowDecisions(ctx context.Context) ([]ShadowDecision, error) {
	var out []ShadowDecision
	if err := c.do(ctx, http.MethodGet, constants.ShadowDecisionsPath, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplayIAMLogs replays IAM logs through the policy engine in shadow mode.
func (c *Client) ReplayIAMLogs(ctx context.Context, request ReplayRequest) (*ReplayResponse, error) {
	var out ReplayResponse
	if err := c.do(ctx, http.MethodPost, constants.ShadowReplayPath, request, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// SOXReport fetches the SOX compliance report.
func (c *Client) SOXReport(ctx context.Context) (*SOXReport, error) {
	var out SOXReport
	if err := c.do(ctx, http.MethodGet, constants.ComplianceSOXPath, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// PCIReport fetches the PCI-DSS compliance report.
func (c *Client) PCIReport(ctx context.Context) (*PCIReport, error) {
	var out PCIReport
	if err := c.do(ctx, http.MethodGet, constants.CompliancePCIPath, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuditLogs fetches audit log entries.
func (c *Client) AuditLogs(ctx context.Context) ([]AuditLog, error) {
	var out []AuditLog
	if err := c.do(ctx, http.MethodGet, constants.AuditLogsPath, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Usage fetches usage statistics for the license.
func (c *Client) Usage(ctx context.Context) (*UsageResponse, error) {
	var out UsageResponse
	if err := c.do(ctx, http.MethodGet, constants.UsagePath, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one API call: serialize, sign, send with retries, map the
// response status to the error model, decode into out.
func (c *Client) do(ctx context.Context, method, path string, payload any, out any, authenticated bool) error {
	if c.signer.Destroyed() {
		return ErrClientClosed
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request payload: %w", err)
		}
	}

	return c.retryPolicy.do(ctx, func() error {
		return c.doOnce(ctx, method, path, body, out, authenticated)
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, body []byte, out any, authenticated bool) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &InvalidRequestError{Message: "failed to build request"}
	}

	timestamp, signature, err := c.signer.Sign(method, path, body)
	if err != nil {
		return err
	}

	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(constants.HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	req.Header.Set(constants.HeaderSignature, signature)
	req.Header.Set(constants.HeaderRequestID, uuid.NewString())
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+c.licenseKey.AsString())
	}

	c.logRequest(req, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := classifyTransportError(method+" "+path, err)
		c.log.ErrorContext(ctx, "Request failed",
			slog.String("method", method),
			slog.String("path", path),
			logging.Error(netErr),
			logging.Duration(time.Since(start)))
		return netErr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	c.logResponse(ctx, resp.StatusCode, respBody, time.Since(start))

	if err := statusToError(resp.StatusCode, respBody); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return ErrInvalidResponse
		}
	}
	return nil
}

func (c *Client) logRequest(req *http.Request, body []byte) {
	if !c.logRequests {
		return
	}
	attrs := []any{
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("body", redactBody(body, c.maxLogBody)),
	}
	attrs = append(attrs, redactHeaders(req.Header)...)
	c.log.Debug("Sending request", attrs...)
}

func (c *Client) logResponse(ctx context.Context, status int, body []byte, elapsed time.Duration) {
	if !c.logRequests {
		return
	}
	c.log.DebugContext(ctx, "Received response",
		slog.Int("status", status),
		slog.String("body", redactBody(body, c.maxLogBody)),
		logging.Duration(elapsed))
}

// statusToError maps an HTTP status to the client error model. Error detail
// comes from the response body, never from anything the caller sent.
func statusToError(status int, body []byte) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusTooManyRequests:
		return &RateLimitError{Message: strings.TrimSpace(string(body))}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &InvalidRequestError{Message: strings.TrimSpace(string(body))}
	case status >= 500:
		return ErrServerError
	default:
		return ErrInvalidResponse
	}
}

// classifyTransportError collapses transport failures into coarse, safe
// categories so error messages never leak connection internals.
func classifyTransportError(op string, err error) *NetworkError {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return &NetworkError{Op: op, Err: errors.New("request timeout")}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &NetworkError{Op: op, Err: err}
	default:
		return &NetworkError{Op: op, Err: errors.New("connection failed")}
	}
}
