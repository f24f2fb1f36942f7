package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"

	"crypto_dashboard/internal/feature/portfolio/adapters"
)

// mockPriceLookup is a PriceLookup returning fixed prices and counting calls.
type mockPriceLookup struct {
	prices map[string]float64
	calls  int
}

func (m *mockPriceLookup) Price(_ context.Context, symbol string) float64 {
	m.calls++
	return m.prices[symbol]
}

// TestNewPriceOverrideLookup_DefaultNamespace verifies the default key namespace.
func TestNewPriceOverrideLookup_DefaultNamespace(t *testing.T) {
	t.Parallel()

	p := NewPriceOverrideLookup(nil, &mockPriceLookup{}, "")
	if p.namespace != "prices" {
		t.Errorf("expected namespace %q, got %q", "prices", p.namespace)
	}
	if got := p.key("btc"); got != "prices:BTC" {
		t.Errorf("expected key prices:BTC, got %q", got)
	}
}

// TestPriceOverrideLookup_NilRedis verifies that a nil client bypasses Redis.
func TestPriceOverrideLookup_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockPriceLookup{prices: map[string]float64{"BTC": 43250}}
	p := NewPriceOverrideLookup(nil, inner, "prices")

	if got := p.Price(context.Background(), "BTC"); got != 43250 {
		t.Errorf("expected 43250, got %v", got)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

// TestPriceOverrideLookup_Hit verifies that a Redis value wins over the inner lookup.
func TestPriceOverrideLookup_Hit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("prices:BTC").SetVal("50000.5")

	inner := &mockPriceLookup{prices: map[string]float64{"BTC": 43250}}
	p := NewPriceOverrideLookup(rdb, inner, "prices")

	if got := p.Price(context.Background(), "BTC"); got != 50000.5 {
		t.Errorf("expected 50000.5, got %v", got)
	}
	if inner.calls != 0 {
		t.Error("inner lookup should not be called on override hit")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestPriceOverrideLookup_CaseInsensitiveWithCoinTable verifies that override keys and
// the coin table agree on symbol case, on both the hit and the miss path.
func TestPriceOverrideLookup_CaseInsensitiveWithCoinTable(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("prices:BTC").SetVal("50000")
	mock.ExpectGet("prices:ETH").RedisNil()

	p := NewPriceOverrideLookup(rdb, adapters.DefaultCoinTable(), "prices")

	if got := p.Price(context.Background(), "btc"); got != 50000 {
		t.Errorf("expected override 50000 for btc, got %v", got)
	}
	if got := p.Price(context.Background(), " eth "); got != 2280.5 {
		t.Errorf("expected table price 2280.5 for eth, got %v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestPriceOverrideLookup_FallsBack verifies every fallback path.
func TestPriceOverrideLookup_FallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect func(mock redismock.ClientMock)
	}{
		{"miss", func(mock redismock.ClientMock) { mock.ExpectGet("prices:ETH").RedisNil() }},
		{"redis error", func(mock redismock.ClientMock) { mock.ExpectGet("prices:ETH").SetErr(errors.New("connection refused")) }},
		{"not a number", func(mock redismock.ClientMock) { mock.ExpectGet("prices:ETH").SetVal("cheap") }},
		{"negative", func(mock redismock.ClientMock) { mock.ExpectGet("prices:ETH").SetVal("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			defer func() { _ = rdb.Close() }()
			tt.expect(mock)

			inner := &mockPriceLookup{prices: map[string]float64{"ETH": 2280.5}}
			p := NewPriceOverrideLookup(rdb, inner, "prices")

			if got := p.Price(context.Background(), "ETH"); got != 2280.5 {
				t.Errorf("expected inner price 2280.5, got %v", got)
			}
			if inner.calls != 1 {
				t.Errorf("expected 1 inner call, got %d", inner.calls)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled mock expectations: %v", err)
			}
		})
	}
}

// TestSafe verifies escaping of characters that are problematic for Redis keys.
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"BTC", "BTC"},
		{"WRAPPED BTC", "WRAPPED_BTC"},
		{"a:b", "a_b"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := safe(tt.input); got != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
