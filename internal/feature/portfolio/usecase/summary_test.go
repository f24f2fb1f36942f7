package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
	"crypto_dashboard/internal/feature/portfolio/usecase"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		coins            []entity.Coin
		cash             float64
		expectedHoldings string
		expectedTotal    string
	}{
		{
			name:             "empty portfolio",
			expectedHoldings: "0.00",
			expectedTotal:    "0.00",
		},
		{
			name:             "cash only",
			cash:             500,
			expectedHoldings: "0.00",
			expectedTotal:    "500.00",
		},
		{
			name: "holdings and cash",
			coins: []entity.Coin{
				{Symbol: "BTC", Value: 64875},
				{Symbol: "ETH", Value: 4561},
			},
			cash:             500,
			expectedHoldings: "69436.00",
			expectedTotal:    "69936.00",
		},
		{
			name: "no float drift on cents",
			coins: []entity.Coin{
				{Symbol: "A", Value: 0.1},
				{Symbol: "B", Value: 0.2},
			},
			cash:             0.3,
			expectedHoldings: "0.30",
			expectedTotal:    "0.60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := usecase.Summarize(tt.coins, tt.cash)
			assert.Equal(t, tt.expectedHoldings, s.HoldingsValue.StringFixed(2))
			assert.Equal(t, tt.expectedTotal, s.TotalValue.StringFixed(2))
		})
	}

	assert.Equal(t, "0.3", usecase.Summarize([]entity.Coin{{Value: 0.1}, {Value: 0.2}}, 0).HoldingsValue.String())
}
