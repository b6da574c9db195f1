package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ovenfresh/cookieshop/pkg/auth"
	"github.com/ovenfresh/cookieshop/pkg/response"
)

type claimsKey struct{}

// ClaimsFromCtx returns the verified token claims stored by RequireAdmin.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// RequireAdmin is the authoritative per-endpoint check: it extracts the
// bearer token from the Authorization header, verifies signature, expiry
// and the admin flag, and stores the claims in the request context.
//
// A missing header is an authentication failure (401); a present but
// invalid or non-admin token is an authorization failure (403) reported
// with forbiddenMsg. This check is independent of the coarse AdminGate.
func RequireAdmin(forbiddenMsg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims := auth.VerifyToken(token)
			if claims == nil || !claims.IsAdmin {
				response.Error(w, http.StatusForbidden, forbiddenMsg)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
