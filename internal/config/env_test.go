package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/ads")
	t.Setenv("SERVER_ADDRESS", "localhost:7070")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/ads", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.Auth.TokenSignKey)
}
