// Package entity defines the domain models for the portfolio feature.
package entity

// PortfolioRecord is the account-level record returned by the remote portfolio service.
type PortfolioRecord struct {
	ID          int64
	CashBalance float64
}

// HoldingRecord is an aggregated position in one coin as reported by the remote service.
// Records are treated as immutable once received.
type HoldingRecord struct {
	Coin              string  // Coin symbol (e.g., "BTC")
	TotalQuantity     float64 // Sum of all purchased units
	AvgPurchaseCost   float64 // Average cost per unit
	TotalInvested     float64 // Total amount spent on this coin
	PurchaseCount     int     // Number of purchases aggregated
	FirstPurchaseDate string  // ISO-8601 timestamp of the first purchase
	LastPurchaseDate  string  // ISO-8601 timestamp of the latest purchase
}

// TransactionRecord is a single trade as reported by the remote service.
type TransactionRecord struct {
	ID          string
	Coin        string
	Type        Side
	Quantity    float64
	Price       float64
	Date        string // ISO-8601, parsed by the transformer
	TotalAmount float64
	Fees        float64
	Status      string
}
