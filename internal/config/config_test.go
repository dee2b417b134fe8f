package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, "http://localhost:7070", cfg.Policy.Endpoint)
	assert.Equal(t, "/policies/education/allow-graphing", cfg.Policy.Path)
	assert.Equal(t, 5*time.Second, cfg.Policy.Timeout)
	assert.True(t, cfg.Policy.GraphingAvailable)

	assert.Equal(t, "/tmp/omnicalc/settings.toml", cfg.Settings.Path)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("POLICY_ADDR", "http://policy:7070")
	t.Setenv("GRAPHING_AVAILABLE", "false")
	t.Setenv("SETTINGS_PATH", "/var/lib/omnicalc/settings.toml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "http://policy:7070", cfg.Policy.Endpoint)
	assert.False(t, cfg.Policy.GraphingAvailable)
	assert.Equal(t, "/var/lib/omnicalc/settings.toml", cfg.Settings.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	require.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}
