package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 168*time.Hour, cfg.RememberTTL)
	assert.Equal(t, "lax", cfg.CookieSameSite)
	assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadSameSite(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_COOKIE_SAMESITE", "none")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_COOKIE_SAMESITE", "strict")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "strict", cfg.CookieSameSite)
}
