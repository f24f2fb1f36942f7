// Package dto defines the JSON shapes served to the dashboard front end.
package dto

// CoinResponse is one row of the holdings table.
type CoinResponse struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"current_price"`
	Value        float64 `json:"value"`
}

// TransactionResponse is one row of the transaction history table.
type TransactionResponse struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"` // RFC3339
	CoinName   string   `json:"coin_name"`
	CoinSymbol string   `json:"coin_symbol"`
	Quantity   float64  `json:"quantity"`
	Price      float64  `json:"price"`
	Type       string   `json:"type"`
	Total      float64  `json:"total"`
	Fees       *float64 `json:"fees,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

// PerformancePointResponse is one point of the performance chart.
type PerformancePointResponse struct {
	Timestamp string  `json:"timestamp"` // RFC3339
	Value     float64 `json:"value"`
}

// SummaryResponse holds the portfolio totals, formatted with two decimals.
type SummaryResponse struct {
	HoldingsValue string `json:"holdings_value"`
	TotalValue    string `json:"total_value"`
}

// DashboardResponse is the full read model of the dashboard.
type DashboardResponse struct {
	Coins           []CoinResponse             `json:"coins"`
	CashBalance     float64                    `json:"cash_balance"`
	Transactions    []TransactionResponse      `json:"transactions"`
	Performance     []PerformancePointResponse `json:"performance"`
	Summary         SummaryResponse            `json:"summary"`
	LastRefreshedAt *string                    `json:"last_refreshed_at"` // null until the first successful refresh
	IsLoading       bool                       `json:"is_loading"`
	Error           string                     `json:"error,omitempty"`
	State           string                     `json:"state"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
