package usecase

import (
	"github.com/shopspring/decimal"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

// Summary holds the totals shown above the holdings table.
type Summary struct {
	HoldingsValue decimal.Decimal // Sum of every coin's value
	TotalValue    decimal.Decimal // HoldingsValue plus cash balance
}

// Summarize sums coin values and cash in decimal.
func Summarize(coins []entity.Coin, cashBalance float64) Summary {
	holdings := decimal.Zero
	for _, c := range coins {
		holdings = holdings.Add(decimal.NewFromFloat(c.Value))
	}
	return Summary{
		HoldingsValue: holdings,
		TotalValue:    holdings.Add(decimal.NewFromFloat(cashBalance)),
	}
}
