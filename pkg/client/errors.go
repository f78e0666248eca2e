package client

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the client. Messages are safe to log: they
// never contain credentials or internal server details.
var (
	// ErrUnauthorized means the license key is invalid or expired
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden means the license tier does not permit the operation
	ErrForbidden = errors.New("access denied: insufficient tier permissions")

	// ErrServerError means the API reported an internal failure
	ErrServerError = errors.New("server error")

	// ErrInvalidResponse means the API returned an unexpected payload or status
	ErrInvalidResponse = errors.New("invalid response from server")

	// ErrClientClosed means the client was used after Close
	ErrClientClosed = errors.New("client has been closed")
)

// RateLimitError reports that the license tier's request limit was exceeded.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded: " + e.Message
}

// InvalidRequestError reports request validation failure (4xx).
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Message
}

// NetworkError wraps a transport-level failure (connection, DNS, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// isRetryable reports whether the error class is worth another attempt.
// Network failures and server errors are transient; authentication, tier
// and validation failures will not change on retry, and rate limits are the
// caller's backoff problem.
func isRetryable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, ErrServerError)
}
