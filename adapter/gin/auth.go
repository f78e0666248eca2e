// Package ginadapter exposes the signature verification middleware as a
// Gin handler.
package ginadapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truthlinked/go-sdk/pkg/middleware/auth"
)

// AuthMiddleware creates a Gin handler that verifies request signatures
// before the rest of the chain runs.
func AuthMiddleware(licenseKeys []string, opts ...func(*auth.Config)) (gin.HandlerFunc, error) {
	verifier, err := auth.New(licenseKeys, opts...)
	if err != nil {
		return nil, err
	}

	return func(c *gin.Context) {
		handler := verifier.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Propagate the request carrying the auth state into the
			// Gin chain.
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)

		if c.Writer.Written() && c.Writer.Status() == http.StatusUnauthorized {
			c.Abort()
		}
	}, nil
}
