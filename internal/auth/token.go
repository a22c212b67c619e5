package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "lolly-law"

// TokenService issues and verifies the signed session tokens carried in the
// auth cookie. Tokens are stateless: the server holds only the HMAC secret,
// and validity is a pure function of signature and expiry. The payload
// carries nothing beyond the subject — tokens are signed, not encrypted.
type TokenService struct {
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// NewTokenService constructs a TokenService. sessionTTL is the default
// validity window, rememberTTL the extended window selected by the
// remember-me flag at login.
func NewTokenService(secret string, sessionTTL, rememberTTL time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: token secret must be at least 16 characters")
	}
	if sessionTTL <= 0 || rememberTTL <= 0 {
		return nil, errors.New("auth: token lifetimes must be positive")
	}
	return &TokenService{
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}, nil
}

// TTL returns the validity window selected by the remember flag.
func (s *TokenService) TTL(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}
	return s.sessionTTL
}

// Issue signs a token for the user id. The validity window is the default
// session TTL, or the extended remember-me TTL when requested.
func (s *TokenService) Issue(userID int64, remember bool) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL(remember))),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes a token string and returns the embedded user id. Every
// failure mode — missing, malformed, expired, bad signature, non-numeric
// subject — collapses to ok=false so callers only branch on presence.
func (s *TokenService) Verify(tokenStr string) (int64, bool) {
	if tokenStr == "" {
		return 0, false
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, false
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}
