package usecase_test

import (
	"context"
	"sync"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

// stubPrices is a map-backed PriceLookup; unknown symbols price at zero.
type stubPrices map[string]float64

func (s stubPrices) Price(_ context.Context, symbol string) float64 {
	return s[symbol]
}

// stubNames is a map-backed NameLookup; unknown symbols map to themselves.
type stubNames map[string]string

func (s stubNames) Name(symbol string) string {
	if n, ok := s[symbol]; ok {
		return n
	}
	return symbol
}

var (
	testPrices = stubPrices{"BTC": 43250, "ETH": 2280.5, "ADA": 0.58}
	testNames  = stubNames{"BTC": "Bitcoin", "ETH": "Ethereum", "ADA": "Cardano"}
)

// mockPortfolioAPI is a function-field mock of PortfolioAPI that counts calls.
type mockPortfolioAPI struct {
	FetchPortfolioFunc    func(ctx context.Context) ([]entity.PortfolioRecord, error)
	FetchHoldingsFunc     func(ctx context.Context) ([]entity.HoldingRecord, error)
	FetchTransactionsFunc func(ctx context.Context) ([]entity.TransactionRecord, error)

	mu    sync.Mutex
	calls int
}

func (m *mockPortfolioAPI) count() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *mockPortfolioAPI) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockPortfolioAPI) FetchPortfolio(ctx context.Context) ([]entity.PortfolioRecord, error) {
	m.count()
	return m.FetchPortfolioFunc(ctx)
}

func (m *mockPortfolioAPI) FetchHoldings(ctx context.Context) ([]entity.HoldingRecord, error) {
	m.count()
	return m.FetchHoldingsFunc(ctx)
}

func (m *mockPortfolioAPI) FetchTransactions(ctx context.Context) ([]entity.TransactionRecord, error) {
	m.count()
	return m.FetchTransactionsFunc(ctx)
}

// happyAPI returns a mock serving one portfolio record, two holdings and one transaction.
func happyAPI(cash float64) *mockPortfolioAPI {
	return &mockPortfolioAPI{
		FetchPortfolioFunc: func(context.Context) ([]entity.PortfolioRecord, error) {
			return []entity.PortfolioRecord{{ID: 1, CashBalance: cash}}, nil
		},
		FetchHoldingsFunc: func(context.Context) ([]entity.HoldingRecord, error) {
			return []entity.HoldingRecord{
				{Coin: "BTC", TotalQuantity: 1.5},
				{Coin: "ETH", TotalQuantity: 2},
			}, nil
		},
		FetchTransactionsFunc: func(context.Context) ([]entity.TransactionRecord, error) {
			return []entity.TransactionRecord{{
				ID:          "tx-1",
				Coin:        "BTC",
				Type:        entity.SideBuy,
				Quantity:    0.5,
				Price:       42000,
				Date:        "2024-01-15T10:30:00Z",
				TotalAmount: 21000,
				Fees:        1.25,
				Status:      "completed",
			}}, nil
		},
	}
}
