package sentient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
	"crypto_dashboard/internal/feature/portfolio/usecase"
	"crypto_dashboard/internal/platform/externalapi/sentient/dto"
	"crypto_dashboard/internal/shared/ratelimiter"
)

// Resource names one of the RPC collections served by the portfolio API.
type Resource string

const (
	ResourcePortfolio    Resource = "portfolio"
	ResourceHoldings     Resource = "holdings"
	ResourceTransactions Resource = "transactions"
)

// rpcNames maps each resource to its RPC function.
var rpcNames = map[Resource]string{
	ResourcePortfolio:    "get_portfolio",
	ResourceHoldings:     "get_holdings_aggregated",
	ResourceTransactions: "get_transactions",
}

// TokenSource supplies the bearer token attached to each request.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource returning a fixed token. An empty token sends no Authorization header.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token() (string, error) {
	return string(s), nil
}

// Client calls the portfolio RPC API. Every call is a POST with an empty JSON object body.
type Client struct {
	cfg     Config
	client  *http.Client
	tokens  TokenSource
	limiter ratelimiter.Limiter
}

// Client must satisfy the usecase PortfolioAPI contract.
var _ usecase.PortfolioAPI = (*Client)(nil)

// NewClient creates a Client. tokens and limiter may be nil.
func NewClient(cfg Config, client *http.Client, tokens TokenSource, limiter ratelimiter.Limiter) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{cfg: cfg, client: client, tokens: tokens, limiter: limiter}
}

// FetchPortfolio returns the portfolio records.
func (c *Client) FetchPortfolio(ctx context.Context) ([]entity.PortfolioRecord, error) {
	body, err := fetch[dto.PortfolioRecord](ctx, c, ResourcePortfolio)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PortfolioRecord, 0, len(body))
	for _, p := range body {
		out = append(out, entity.PortfolioRecord{ID: p.ID, CashBalance: p.CashBalance})
	}
	return out, nil
}

// FetchHoldings returns the aggregated holdings.
func (c *Client) FetchHoldings(ctx context.Context) ([]entity.HoldingRecord, error) {
	body, err := fetch[dto.HoldingRecord](ctx, c, ResourceHoldings)
	if err != nil {
		return nil, err
	}
	out := make([]entity.HoldingRecord, 0, len(body))
	for _, h := range body {
		out = append(out, entity.HoldingRecord{
			Coin:              h.Coin,
			TotalQuantity:     h.TotalQuantity,
			AvgPurchaseCost:   h.AvgPurchaseCost,
			TotalInvested:     h.TotalInvested,
			PurchaseCount:     h.PurchaseCount,
			FirstPurchaseDate: h.FirstPurchaseDate,
			LastPurchaseDate:  h.LastPurchaseDate,
		})
	}
	return out, nil
}

// FetchTransactions returns the transaction history.
func (c *Client) FetchTransactions(ctx context.Context) ([]entity.TransactionRecord, error) {
	body, err := fetch[dto.TransactionRecord](ctx, c, ResourceTransactions)
	if err != nil {
		return nil, err
	}
	out := make([]entity.TransactionRecord, 0, len(body))
	for _, t := range body {
		side := entity.Side(t.Type)
		if !side.Valid() {
			slog.Warn("unexpected transaction type", "id", t.ID, "type", t.Type)
		}
		out = append(out, entity.TransactionRecord{
			ID:          t.ID,
			Coin:        t.Coin,
			Type:        side,
			Quantity:    t.Quantity,
			Price:       t.Price,
			Date:        t.Date,
			TotalAmount: t.TotalAmount,
			Fees:        t.Fees,
			Status:      t.Status,
		})
	}
	return out, nil
}

// Forward returns the raw JSON elements of a resource ("portfolio", "holdings" or
// "transactions") without interpreting them.
func (c *Client) Forward(ctx context.Context, resource string) ([]json.RawMessage, error) {
	return fetch[json.RawMessage](ctx, c, Resource(resource))
}

func (c *Client) endpoint(r Resource) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + rpcNames[r]
}

// fetch performs the call for r, decodes the JSON array body and logs the outcome.
func fetch[T any](ctx context.Context, c *Client, r Resource) ([]T, error) {
	endpoint := c.endpoint(r)
	started := time.Now()

	var out []T
	err := c.post(ctx, r, endpoint, func(body io.Reader) error {
		return json.NewDecoder(body).Decode(&out)
	})
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		slog.Error("remote call failed", "endpoint", endpoint, "duration_ms", elapsed, "error", err)
		return nil, err
	}

	slog.Info("remote call succeeded", "endpoint", endpoint, "duration_ms", elapsed, "records", len(out))
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, r Resource, endpoint string, decode func(io.Reader) error) error {
	if _, ok := rpcNames[r]; !ok {
		return &usecase.RemoteCallError{Resource: string(r), Endpoint: endpoint, Err: fmt.Errorf("unknown resource %q", r)}
	}
	callErr := func(err error) error {
		return &usecase.RemoteCallError{Resource: string(r), Endpoint: endpoint, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return callErr(err)
		}
	}

	token, err := c.tokens.Token()
	if err != nil {
		return callErr(fmt.Errorf("bearer token: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return callErr(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.CustomAuth != "" {
		req.Header.Set("x-custom-auth", c.cfg.CustomAuth)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return callErr(err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &usecase.RemoteCallError{
			Resource:   string(r),
			Endpoint:   endpoint,
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}

	if err := decode(res.Body); err != nil {
		return callErr(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
