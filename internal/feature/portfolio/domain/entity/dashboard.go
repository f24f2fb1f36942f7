package entity

import "time"

// RefreshState is the lifecycle state of the refresh controller.
type RefreshState int

const (
	StateIdle RefreshState = iota
	StateLoading
	StateReady
	StateFailed
)

// String returns the lower-case state name used in API responses and logs.
func (s RefreshState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Dashboard is a point-in-time copy of everything the presentation layer reads.
type Dashboard struct {
	Coins           []Coin
	CashBalance     float64
	Transactions    []Transaction
	Performance     []PortfolioDataPoint
	LastRefreshedAt time.Time
	IsLoading       bool
	Error           string
	State           RefreshState
}
