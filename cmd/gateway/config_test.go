package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "DEBUG", "ML_SERVICE_URL", "APP_SERVER_PORT", "APP_DEBUG", "APP_MLSERVICE_URL"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5002", cfg.MLService.URL)
	assert.Equal(t, 30*time.Second, cfg.MLService.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0:5001", cfg.Server.Server().Addr())
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ML_SERVICE_URL", "http://ml:5002")
	t.Setenv("DEBUG", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://ml:5002", cfg.MLService.Client().BaseURL)
	assert.False(t, cfg.Debug)
}
