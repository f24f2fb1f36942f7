// Package config loads the process-level settings of the dashboard server.
package config

import (
	"time"

	"crypto_dashboard/internal/feature/portfolio/usecase"
	"crypto_dashboard/internal/shared/env"
)

// Config holds settings that are not owned by a platform adapter.
type Config struct {
	Port                  string        // HTTP listen port
	RefreshInterval       time.Duration // Period of the background refresh loop
	PerformanceSimulation bool          // Seed and extend the simulated performance series
	CoinTablePath         string        // Optional YAML coin table; built-in table when empty
	LogLevel              string        // debug, info, warn or error
	LogFormat             string        // text or json
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port:                  env.String("PORT", "8080"),
		RefreshInterval:       env.Duration("REFRESH_INTERVAL", usecase.DefaultRefreshInterval),
		PerformanceSimulation: env.Bool("PERFORMANCE_SIMULATION", true),
		CoinTablePath:         env.String("COIN_TABLE_PATH", ""),
		LogLevel:              env.String("LOG_LEVEL", "info"),
		LogFormat:             env.String("LOG_FORMAT", "text"),
	}
}
