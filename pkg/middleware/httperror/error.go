// Package httperror carries HTTP-mappable errors between middleware layers.
package httperror

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/truthlinked/go-sdk/pkg/internal/logging"
)

// Error pairs an HTTP status with a client-safe message. Err holds the
// underlying cause for logging and is never sent to the client.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

type errorResponse struct {
	Error string `json:"error"`
}

// Write sends the error to the client as a JSON body. Only Message leaves
// the process; the cause stays server-side.
func Write(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: e.Message})
}

// DefaultErrorHandler logs the full error and writes the client-safe part.
func DefaultErrorHandler(ctx context.Context, log *slog.Logger, e *Error, w http.ResponseWriter, _ *http.Request) {
	log.WarnContext(ctx, "request rejected",
		slog.Int("status", e.StatusCode),
		logging.Error(e),
	)
	Write(w, e)
}
