package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// NewAdminMiddleware enforces Authorization: Bearer <token> on the
// diagnostic and reload endpoints. An empty token leaves them open.
func NewAdminMiddleware(token string) func(http.Handler) http.Handler {
	token = strings.TrimSpace(token)
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeFailure(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing Authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeFailure(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "malformed Authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeFailure(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(raw), []byte(token)) != 1 {
				writeFailure(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
