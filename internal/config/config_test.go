package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("BACKEND_URL", "http://backend.local")
	t.Setenv("SMTP_HOST", "smtp.local")
	t.Setenv("SMTP_USER", "mailer@local")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "workshop-gateway", cfg.AppName)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "HS256", cfg.TokenAlgorithm)
	assert.Equal(t, 480*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 40*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.HTTPMaxRetries)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_NAME", "test-gw")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("HTTP_MAX_RETRIES", "1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-gw", cfg.AppName)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 1, cfg.HTTPMaxRetries)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadBadIntFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
}
