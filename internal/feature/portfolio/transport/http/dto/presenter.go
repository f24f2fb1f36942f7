package dto

import (
	"time"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
	"crypto_dashboard/internal/feature/portfolio/usecase"
)

// NewDashboardResponse converts a snapshot into its JSON representation.
func NewDashboardResponse(d entity.Dashboard) DashboardResponse {
	coins := make([]CoinResponse, 0, len(d.Coins))
	for _, c := range d.Coins {
		coins = append(coins, CoinResponse{
			Name:         c.Name,
			Symbol:       c.Symbol,
			Quantity:     c.Quantity,
			CurrentPrice: c.CurrentPrice,
			Value:        c.Value,
		})
	}

	txns := make([]TransactionResponse, 0, len(d.Transactions))
	for _, t := range d.Transactions {
		txns = append(txns, TransactionResponse{
			ID:         t.ID,
			Timestamp:  t.Timestamp.UTC().Format(time.RFC3339),
			CoinName:   t.CoinName,
			CoinSymbol: t.CoinSymbol,
			Quantity:   t.Quantity,
			Price:      t.Price,
			Type:       string(t.Type),
			Total:      t.Total,
			Fees:       t.Fees,
			Status:     t.Status,
		})
	}

	perf := make([]PerformancePointResponse, 0, len(d.Performance))
	for _, p := range d.Performance {
		perf = append(perf, PerformancePointResponse{
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
			Value:     p.Value,
		})
	}

	var refreshed *string
	if !d.LastRefreshedAt.IsZero() {
		s := d.LastRefreshedAt.UTC().Format(time.RFC3339)
		refreshed = &s
	}

	summary := usecase.Summarize(d.Coins, d.CashBalance)
	return DashboardResponse{
		Coins:        coins,
		CashBalance:  d.CashBalance,
		Transactions: txns,
		Performance:  perf,
		Summary: SummaryResponse{
			HoldingsValue: summary.HoldingsValue.StringFixed(2),
			TotalValue:    summary.TotalValue.StringFixed(2),
		},
		LastRefreshedAt: refreshed,
		IsLoading:       d.IsLoading,
		Error:           d.Error,
		State:           d.State.String(),
	}
}
