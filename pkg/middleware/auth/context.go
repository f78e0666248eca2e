package auth

import (
	"context"
	"time"
)

type contextKey string

const stateKey contextKey = "truthlinked_auth_state"

// State describes a successfully verified request.
type State struct {
	// KeyID is the redacted form of the credential that verified the
	// signature, safe for logs.
	KeyID string

	// Timestamp is the signing time the client declared.
	Timestamp time.Time
}

// StateFromContext returns the verification state set by the middleware,
// or false when the request was not authenticated (for example a skipped
// path).
func StateFromContext(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(stateKey).(*State)
	return state, ok
}

func withState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}
