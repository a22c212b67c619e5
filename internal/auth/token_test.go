package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidjulakidze/lolly-law-assessment/internal/auth"
	_ "github.com/davidjulakidze/lolly-law-assessment/testing"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService(testSecret, time.Hour, 168*time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRejectsWeakConfig(t *testing.T) {
	_, err := auth.NewTokenService("short", time.Hour, 168*time.Hour)
	assert.Error(t, err)

	_, err = auth.NewTokenService(testSecret, 0, 168*time.Hour)
	assert.Error(t, err)

	_, err = auth.NewTokenService(testSecret, time.Hour, -time.Hour)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTokenService(t)

	for _, remember := range []bool{false, true} {
		token, err := svc.Issue(42, remember)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, ok := svc.Verify(token)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)
	}
}

func TestTTLSelection(t *testing.T) {
	svc := newTokenService(t)

	assert.Equal(t, time.Hour, svc.TTL(false))
	assert.Equal(t, 168*time.Hour, svc.TTL(true))
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	svc := newTokenService(t)

	_, ok := svc.Verify("")
	assert.False(t, ok)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTokenService(t)

	_, ok := svc.Verify("not.a.token")
	assert.False(t, ok)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newTokenService(t)

	token, err := svc.Issue(7, false)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, ok := svc.Verify(tampered)
	assert.False(t, ok)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := newTokenService(t)
	other, err := auth.NewTokenService("ffffffffffffffffffffffffffffffff", time.Hour, 168*time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(7, false)
	require.NoError(t, err)

	_, ok := svc.Verify(token)
	assert.False(t, ok)
}

// signClaims produces tokens the service itself would never issue, to probe
// the rejection paths.
func signClaims(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTokenService(t)

	expired := signClaims(t, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "lolly-law",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, ok := svc.Verify(expired)
	assert.False(t, ok)
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	svc := newTokenService(t)

	noExpiry := signClaims(t, jwt.RegisteredClaims{
		Subject:  "42",
		Issuer:   "lolly-law",
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})

	_, ok := svc.Verify(noExpiry)
	assert.False(t, ok)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	svc := newTokenService(t)

	wrongIssuer := signClaims(t, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "somebody-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, ok := svc.Verify(wrongIssuer)
	assert.False(t, ok)
}

func TestVerifyRejectsBadSubject(t *testing.T) {
	svc := newTokenService(t)

	for _, subject := range []string{"", "abc", "-5", "0"} {
		token := signClaims(t, jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "lolly-law",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		_, ok := svc.Verify(token)
		assert.False(t, ok, "subject %q should not verify", subject)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	svc := newTokenService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "lolly-law",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, ok := svc.Verify(signed)
	assert.False(t, ok)
}
