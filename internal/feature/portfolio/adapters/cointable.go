// Package adapters provides the built-in implementations of the portfolio lookups.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"crypto_dashboard/internal/feature/portfolio/usecase"
)

// CoinInfo is one row of the coin table.
type CoinInfo struct {
	Symbol string  `yaml:"symbol"`
	Name   string  `yaml:"name"`
	Price  float64 `yaml:"price"`
}

// coinTableFile is the on-disk layout read by LoadCoinTable.
type coinTableFile struct {
	Coins []CoinInfo `yaml:"coins"`
}

// defaultCoins is the built-in table used when no file is configured.
var defaultCoins = []CoinInfo{
	{Symbol: "BTC", Name: "Bitcoin", Price: 43250},
	{Symbol: "ETH", Name: "Ethereum", Price: 2280.5},
	{Symbol: "ADA", Name: "Cardano", Price: 0.58},
	{Symbol: "SOL", Name: "Solana", Price: 98.75},
	{Symbol: "DOT", Name: "Polkadot", Price: 7.42},
	{Symbol: "MATIC", Name: "Polygon", Price: 0.9},
	{Symbol: "LINK", Name: "Chainlink", Price: 15.5},
	{Symbol: "AVAX", Name: "Avalanche", Price: 35.2},
	{Symbol: "UNI", Name: "Uniswap", Price: 8.5},
	{Symbol: "ATOM", Name: "Cosmos", Price: 10.2},
}

// CoinTable is an immutable symbol table serving both price and display-name lookups.
type CoinTable struct {
	coins map[string]CoinInfo
}

// CoinTable serves as both lookups used by the transformer.
var (
	_ usecase.PriceLookup = (*CoinTable)(nil)
	_ usecase.NameLookup  = (*CoinTable)(nil)
)

// NewCoinTable builds a table from the given rows. Symbols are matched case-insensitively;
// later rows win on duplicate symbols.
func NewCoinTable(coins []CoinInfo) *CoinTable {
	m := make(map[string]CoinInfo, len(coins))
	for _, c := range coins {
		m[normalize(c.Symbol)] = c
	}
	return &CoinTable{coins: m}
}

// DefaultCoinTable returns the built-in table.
func DefaultCoinTable() *CoinTable {
	return NewCoinTable(defaultCoins)
}

// LoadCoinTable reads a YAML coin table from path.
func LoadCoinTable(path string) (*CoinTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coin table: %w", err)
	}

	var f coinTableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse coin table: %w", err)
	}

	for i, c := range f.Coins {
		if strings.TrimSpace(c.Symbol) == "" {
			return nil, fmt.Errorf("coin table entry %d: symbol is required", i)
		}
		if c.Price < 0 {
			return nil, fmt.Errorf("coin table entry %s: price must not be negative", c.Symbol)
		}
	}
	return NewCoinTable(f.Coins), nil
}

// Price returns the table price for symbol, or 0 with a warning when the symbol is unknown.
func (t *CoinTable) Price(_ context.Context, symbol string) float64 {
	c, ok := t.coins[normalize(symbol)]
	if !ok {
		slog.Warn("no price for coin", "symbol", symbol)
		return 0
	}
	return c.Price
}

// Name returns the display name for symbol, falling back to the symbol with a warning.
func (t *CoinTable) Name(symbol string) string {
	c, ok := t.coins[normalize(symbol)]
	if !ok || c.Name == "" {
		slog.Warn("no display name for coin", "symbol", symbol)
		return symbol
	}
	return c.Name
}

// Len returns the number of coins in the table.
func (t *CoinTable) Len() int {
	return len(t.coins)
}

// normalize is the lookup key for a symbol. Price overrides in Redis use the same form.
func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
