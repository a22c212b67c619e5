package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// CookiePolicy decides how the session token travels: an HTTP-only cookie
// scoped to the whole application, Secure only in production-like
// environments so local development over plain HTTP keeps working.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

// ParseSameSite maps the configured policy name to a http.SameSite value.
// Lax is the baseline; Strict is accepted but degrades cross-site
// navigation, which is why it is a deployment choice rather than a constant.
func ParseSameSite(name string) http.SameSite {
	if strings.EqualFold(name, "strict") {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

// Write sets the token cookie with a max-age mirroring the token's
// validity window.
func (p CookiePolicy) Write(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	})
}

// Clear overwrites the token cookie with an empty, immediately expiring
// value. It is unconditional and idempotent: a client holding a stale or
// garbled cookie must still be able to drop it.
func (p CookiePolicy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	})
}
