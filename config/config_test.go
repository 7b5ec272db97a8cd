package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://opensky-network.org/api", cfg.OpenSkyConfig.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.OpenSkyConfig.Timeout)
	assert.Equal(t, 50, cfg.OpenSkyConfig.DefaultLimit)
	assert.Equal(t, "microsoft/phi-3-mini-128k-instruct:free", cfg.OpenRouterConfig.Model)
	assert.Equal(t, 120, cfg.OpenRouterConfig.MaxTokens)
	assert.Equal(t, DefaultRegionName, cfg.Region.Name)
	assert.False(t, cfg.RedisConfig.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REGION", "europe")
	t.Setenv("OPENSKY_TIMEOUT", "3s")
	t.Setenv("REDIS_CACHE_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6390")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "europe", cfg.Region.Name)
	assert.Equal(t, 3*time.Second, cfg.OpenSkyConfig.Timeout)
	assert.True(t, cfg.RedisConfig.Enabled)
	assert.Equal(t, "localhost:6390", cfg.RedisConfig.Addr())
}

func TestLoadUnknownRegionFallsBack(t *testing.T) {
	t.Setenv("REGION", "atlantis")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultRegionName, cfg.Region.Name)
}
