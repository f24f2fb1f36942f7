package entity

import "time"

// Side is the direction of a transaction.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Valid reports whether s is buy or sell.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Coin is the display-ready view of one holding.
// Value is always Quantity * CurrentPrice; it is computed by the transformer and never set independently.
type Coin struct {
	Name         string
	Symbol       string
	Quantity     float64
	CurrentPrice float64
	Value        float64
}

// Transaction is the display-ready view of one trade.
type Transaction struct {
	ID         string
	Timestamp  time.Time
	CoinName   string
	CoinSymbol string
	Quantity   float64
	Price      float64
	Type       Side
	Total      float64
	Fees       *float64 // optional
	Status     *string  // optional
}

// PortfolioDataPoint is one indexed value (base 100) of the performance series.
type PortfolioDataPoint struct {
	Timestamp time.Time
	Value     float64
}
