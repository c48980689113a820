package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://aula-angular.bcorp.tec.br/api", cfg.BankAPI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.BankAPI.Timeout)
	assert.Equal(t, TokenStoreCookie, cfg.Session.Store)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Session.CookieSameSite)
	assert.Equal(t, 3600, cfg.Session.AccessMaxAge)
	assert.Equal(t, 604800, cfg.Session.RefreshMaxAge)
	assert.False(t, cfg.Postgres.Configured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BANK_API_URL", "http://localhost:8000/api/")
	t.Setenv("BANK_API_TIMEOUT", "5s")
	t.Setenv("TOKEN_STORE", "KV")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/bank")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.BankAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.BankAPI.Timeout)
	assert.Equal(t, TokenStoreKV, cfg.Session.Store)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Postgres.Configured())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "store", key: "TOKEN_STORE", value: "redis"},
		{name: "timeout", key: "BANK_API_TIMEOUT", value: "soon"},
		{name: "same-site", key: "AUTH_COOKIE_SAMESITE", value: "sometimes"},
		{name: "max-age", key: "ACCESS_COOKIE_MAX_AGE", value: "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.True(t, errors.Is(err, ErrMisconfigured), "got %v", err)
		})
	}
}

func TestLoadSameSiteNoneRequiresSecure(t *testing.T) {
	t.Setenv("AUTH_COOKIE_SAMESITE", "none")
	t.Setenv("AUTH_COOKIE_SECURE", "false")

	_, err := Load()
	assert.True(t, errors.Is(err, ErrMisconfigured))
}
