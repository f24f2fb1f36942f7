// Package cache provides Redis-backed decorators for lookup interfaces.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"crypto_dashboard/internal/feature/portfolio/usecase"
)

// PriceOverrideLookup decorates a PriceLookup with prices stored in Redis.
// A key "<namespace>:<SYMBOL>" holding a decimal string overrides the inner price.
// Misses, Redis errors and unparsable values fall through to the inner lookup.
type PriceOverrideLookup struct {
	inner     usecase.PriceLookup
	rdb       *redis.Client
	namespace string
}

var _ usecase.PriceLookup = (*PriceOverrideLookup)(nil)

// NewPriceOverrideLookup decorates inner. If namespace is empty, it uses "prices".
func NewPriceOverrideLookup(rdb *redis.Client, inner usecase.PriceLookup, namespace string) *PriceOverrideLookup {
	if namespace == "" {
		namespace = "prices"
	}
	return &PriceOverrideLookup{inner: inner, rdb: rdb, namespace: namespace}
}

// Price returns the Redis override for symbol when present, otherwise the inner price.
func (p *PriceOverrideLookup) Price(ctx context.Context, symbol string) float64 {
	// Bypass Redis if it is not configured
	if p.rdb == nil {
		return p.inner.Price(ctx, symbol)
	}

	key := p.key(symbol)
	val, err := p.rdb.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return p.inner.Price(ctx, symbol)
	case err != nil:
		slog.Warn("price override lookup failed", "key", key, "error", err)
		return p.inner.Price(ctx, symbol)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil || price < 0 {
		slog.Warn("ignoring invalid price override", "key", key, "value", val)
		return p.inner.Price(ctx, symbol)
	}
	return price
}

func (p *PriceOverrideLookup) key(symbol string) string {
	return fmt.Sprintf("%s:%s", p.namespace, safe(strings.ToUpper(strings.TrimSpace(symbol))))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
