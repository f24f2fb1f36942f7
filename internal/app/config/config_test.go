package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "REFRESH_INTERVAL", "PERFORMANCE_SIMULATION", "COIN_TABLE_PATH", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.True(t, cfg.PerformanceSimulation)
	assert.Empty(t, cfg.CoinTablePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("PERFORMANCE_SIMULATION", "false")
	t.Setenv("COIN_TABLE_PATH", "/etc/dashboard/coins.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.False(t, cfg.PerformanceSimulation)
	assert.Equal(t, "/etc/dashboard/coins.yaml", cfg.CoinTablePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
