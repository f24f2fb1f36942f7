// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"crypto_dashboard/internal/app/config"
	"crypto_dashboard/internal/feature/portfolio/adapters"
	"crypto_dashboard/internal/feature/portfolio/usecase"
	"crypto_dashboard/internal/platform/cache"
	"crypto_dashboard/internal/platform/externalapi/sentient"
	infrahttp "crypto_dashboard/internal/platform/http"
	jwtauth "crypto_dashboard/internal/platform/jwt"
	infraredis "crypto_dashboard/internal/platform/redis"
	"crypto_dashboard/internal/shared/ratelimiter"
)

// NewSentientClient creates a fully configured portfolio API client with HTTP client,
// rate limiter and token source.
func NewSentientClient() *sentient.Client {
	cfg := sentient.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	return sentient.NewClient(cfg, httpClient, NewTokenSource(cfg), limiter)
}

// NewTokenSource mints a fresh JWT per request when a signing secret is configured,
// and otherwise falls back to the static bearer token.
func NewTokenSource(cfg sentient.Config) sentient.TokenSource {
	if cfg.JWTSecret != "" {
		return jwtauth.NewGenerator(cfg.JWTSecret, cfg.JWTSubject, cfg.JWTRole, cfg.JWTExpiration)
	}
	if cfg.BearerToken == "" {
		slog.Warn("SENTIENT_BEARER_TOKEN and SENTIENT_JWT_SECRET are not set; requests carry no Authorization header")
	}
	return sentient.StaticToken(cfg.BearerToken)
}

// NewCoinTable loads the coin table from path, or returns the built-in table when path is empty.
func NewCoinTable(path string) (*adapters.CoinTable, error) {
	if path == "" {
		return adapters.DefaultCoinTable(), nil
	}
	table, err := adapters.LoadCoinTable(path)
	if err != nil {
		return nil, err
	}
	slog.Info("coin table loaded", "path", path, "coins", table.Len())
	return table, nil
}

// NewRedis connects to Redis when configured. It returns nil when Redis is
// disabled or unreachable; the caller owns closing a non-nil client.
func NewRedis(ctx context.Context) *redisv9.Client {
	cfg := infraredis.LoadConfig()
	if !cfg.Enabled() {
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable. Running without price overrides.")
		return nil
	}
	return rdb
}

// NewPriceLookup wraps table with Redis price overrides. A nil rdb leaves the table as is.
func NewPriceLookup(rdb *redisv9.Client, table *adapters.CoinTable) usecase.PriceLookup {
	if rdb == nil {
		return table
	}
	return cache.NewPriceOverrideLookup(rdb, table, "prices")
}

// NewRefreshController wires api, coin table and optional Redis overrides into a refresh controller.
func NewRefreshController(cfg config.Config, api usecase.PortfolioAPI, table *adapters.CoinTable, rdb *redisv9.Client) *usecase.RefreshController {
	transformer := usecase.NewTransformer(NewPriceLookup(rdb, table), table)
	series := usecase.NewPerformanceSeries(nil)
	return usecase.NewRefreshController(api, transformer, series,
		usecase.WithInterval(cfg.RefreshInterval),
		usecase.WithPerformanceSimulation(cfg.PerformanceSimulation),
	)
}
