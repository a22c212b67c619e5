package auth

import (
	"net/http"
	"strings"

	"github.com/davidjulakidze/lolly-law-assessment/internal/platform/httpx"
	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

// RequireAuth is the per-request authorization gate. It recovers the
// caller's identity from the token cookie (or an Authorization: Bearer
// header as the secondary transport), verifies it, and stores the user id in
// the request context. Requests without a verifiable identity are rejected
// with 401 before any handler runs. There is no role distinction — only
// authenticated versus not.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := tokens.Verify(tokenFromRequest(r))
			if !ok {
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "valid authentication required")
				return
			}
			ctx := shared.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest extracts the raw token string. The cookie is the primary
// transport; a bearer header is accepted for non-browser clients.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
