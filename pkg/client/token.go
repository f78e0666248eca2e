package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when an AF token cannot be decoded.
var ErrMalformedToken = errors.New("malformed AF token")

// AFTokenClaims are the claims of an issued Authority Fabric token, decoded
// for local inspection. Decoding does NOT verify the token signature; only
// the issuing fabric can do that. Use ValidateToken for an authoritative
// answer.
type AFTokenClaims struct {
	Subject    string
	Scope      []string
	ExchangeID string
	ExpiresAt  time.Time
}

// Expired reports whether the token is past its expiry at the given time.
// Tokens without an exp claim never report expired locally.
func (c *AFTokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseAFToken decodes an AF token's claims without verifying it.
func ParseAFToken(token string) (*AFTokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	out := &AFTokenClaims{}

	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if id, ok := claims["exchange_id"].(string); ok {
		out.ExchangeID = id
	}
	if rawScope, ok := claims["scope"].([]any); ok {
		for _, entry := range rawScope {
			if s, ok := entry.(string); ok {
				out.Scope = append(out.Scope, s)
			}
		}
	}

	return out, nil
}
