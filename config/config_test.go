package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_PORT", "APP_DEBUG", "APP_SHUTDOWN_TIMEOUT",
		"PAYLOAD_API_URL", "PAYLOAD_API_PATH", "PAYLOAD_TIMEOUT", "PAYLOAD_EMPTY_ON_ERROR",
		"RATE_LIMIT_MAX_REQUEST", "RATE_LIMIT_DURATION", "LOGS_PATH", "LOG_FILE_OUTPUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "content-gateway", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "http://localhost:3000/api", cfg.Content.BaseURL)
	assert.Equal(t, "/api", cfg.Content.APIPath)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
	assert.False(t, cfg.Content.EmptyOnError)
	assert.Equal(t, 100, cfg.RateLimit.Request)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PAYLOAD_API_URL", "https://cms.example.com/api")
	t.Setenv("PAYLOAD_TIMEOUT", "3s")
	t.Setenv("PAYLOAD_EMPTY_ON_ERROR", "true")
	t.Setenv("RATE_LIMIT_MAX_REQUEST", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.Address())
	assert.Equal(t, "https://cms.example.com/api", cfg.Content.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Content.Timeout)
	assert.True(t, cfg.Content.EmptyOnError)
	// unparsable values fall back to the default
	assert.Equal(t, 100, cfg.RateLimit.Request)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "base url not a url", key: "PAYLOAD_API_URL", value: "not a url"},
		{name: "unknown environment", key: "APP_ENV", value: "qa"},
		{name: "non numeric port", key: "APP_PORT", value: "http"},
		{name: "zero rate limit", key: "RATE_LIMIT_MAX_REQUEST", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
