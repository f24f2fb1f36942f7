// Package dto defines data transfer objects for the portfolio RPC responses.
package dto

// PortfolioRecord is one element of the get_portfolio response.
type PortfolioRecord struct {
	ID          int64   `json:"id"`
	CashBalance float64 `json:"cash_balance"`
}

// HoldingRecord is one element of the get_holdings_aggregated response.
type HoldingRecord struct {
	Coin              string  `json:"coin"`
	TotalQuantity     float64 `json:"total_quantity"`
	AvgPurchaseCost   float64 `json:"avg_purchase_cost"`
	TotalInvested     float64 `json:"total_invested"`
	PurchaseCount     int     `json:"purchase_count"`
	FirstPurchaseDate string  `json:"first_purchase_date"`
	LastPurchaseDate  string  `json:"last_purchase_date"`
}

// TransactionRecord is one element of the get_transactions response.
type TransactionRecord struct {
	ID          string  `json:"id"`
	Coin        string  `json:"coin"`
	Type        string  `json:"type"` // "buy" or "sell"
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
	Fees        float64 `json:"fees"`
	Status      string  `json:"status"`
}
