package usecase

import (
	"context"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

// PortfolioAPI abstracts the remote portfolio service.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform).
type PortfolioAPI interface {
	// FetchPortfolio returns the account records (cash balance).
	FetchPortfolio(ctx context.Context) ([]entity.PortfolioRecord, error)
	// FetchHoldings returns the aggregated holdings per coin.
	FetchHoldings(ctx context.Context) ([]entity.HoldingRecord, error)
	// FetchTransactions returns the transaction history.
	FetchTransactions(ctx context.Context) ([]entity.TransactionRecord, error)
}

// PriceLookup maps a coin symbol to its current price.
// Implementations return 0 for symbols they do not know.
type PriceLookup interface {
	Price(ctx context.Context, symbol string) float64
}

// NameLookup maps a coin symbol to its display name.
// Implementations return the symbol itself for symbols they do not know.
type NameLookup interface {
	Name(symbol string) string
}
