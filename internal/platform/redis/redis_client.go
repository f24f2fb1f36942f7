// Package redis は価格上書き用の（任意の）Redisへの接続を提供します。
package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"crypto_dashboard/internal/shared/env"
)

// Config holds Redis connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfig は REDIS_HOST, REDIS_PORT, REDIS_PASSWORD を読み込みます。
func LoadConfig() Config {
	return Config{
		Host:     env.String("REDIS_HOST", ""),
		Port:     env.String("REDIS_PORT", "6379"),
		Password: env.String("REDIS_PASSWORD", ""),
	}
}

// Enabled は Redis のホストが設定されているかを返します。
func (c Config) Enabled() bool {
	return c.Host != ""
}

// NewRedisClient は Redis に接続し、Ping で疎通を確認します。失敗した場合はクライアントを閉じます。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
