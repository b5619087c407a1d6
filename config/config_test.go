package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "MODE", "DATABASE_URL", "REDIS_URL", "REFERENCE_FILE",
		"SESSION_TTL", "CONVERSATION_TTL", "LOG_LEVEL", "LOG_FORMAT",
		"COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ModeAnonymous, cfg.Mode)
	assert.False(t, cfg.Mode.RequireAuth())
	assert.Equal(t, defaultRedisURL, cfg.RedisURL)
	assert.Empty(t, cfg.ReferenceFile)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MODE", "authenticated")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REFERENCE_FILE", "/etc/advocate/reference.yaml")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Mode.RequireAuth())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "/etc/advocate/reference.yaml", cfg.ReferenceFile)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODE", "guest")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("CONVERSATION_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SESSION_TTL", "-1h")
	_, err = Load()
	assert.Error(t, err)
}

func TestMode_RequireAuth(t *testing.T) {
	assert.True(t, ModeAuthenticated.RequireAuth())
	assert.False(t, ModeAnonymous.RequireAuth())
	assert.False(t, Mode("").RequireAuth())
}
