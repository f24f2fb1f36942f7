package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"crypto_dashboard/internal/feature/portfolio/domain/entity"
)

// transformWorkers bounds how many holdings are priced concurrently.
const transformWorkers = 8

// dateLayouts are tried in order when parsing transaction dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Transformer converts raw records from the remote service into view entities.
type Transformer struct {
	prices PriceLookup
	names  NameLookup
}

// NewTransformer creates a Transformer using the given price and name lookups.
func NewTransformer(prices PriceLookup, names NameLookup) *Transformer {
	return &Transformer{prices: prices, names: names}
}

// TransformHolding builds a Coin from a holding record, pricing it through the PriceLookup.
func (t *Transformer) TransformHolding(ctx context.Context, h entity.HoldingRecord) entity.Coin {
	price := t.prices.Price(ctx, h.Coin)
	return entity.Coin{
		Name:         t.names.Name(h.Coin),
		Symbol:       h.Coin,
		Quantity:     h.TotalQuantity,
		CurrentPrice: price,
		Value:        h.TotalQuantity * price,
	}
}

// TransformHoldings transforms every holding. The output has the same length and order as the input.
func (t *Transformer) TransformHoldings(ctx context.Context, holdings []entity.HoldingRecord) []entity.Coin {
	coins := make([]entity.Coin, len(holdings))

	var g errgroup.Group
	g.SetLimit(transformWorkers)
	for i := range holdings {
		g.Go(func() error {
			coins[i] = t.TransformHolding(ctx, holdings[i])
			return nil
		})
	}
	_ = g.Wait()

	return coins
}

// TransformTransaction maps a transaction record onto the view entity.
// It returns a *MalformedDateError when the date cannot be parsed.
func (t *Transformer) TransformTransaction(r entity.TransactionRecord) (entity.Transaction, error) {
	ts, err := parseDate(r.Date)
	if err != nil {
		return entity.Transaction{}, &MalformedDateError{TransactionID: r.ID, Value: r.Date, Err: err}
	}

	fees := r.Fees
	txn := entity.Transaction{
		ID:         r.ID,
		Timestamp:  ts,
		CoinName:   t.names.Name(r.Coin),
		CoinSymbol: r.Coin,
		Quantity:   r.Quantity,
		Price:      r.Price,
		Type:       r.Type,
		Total:      r.TotalAmount,
		Fees:       &fees,
	}
	if r.Status != "" {
		status := r.Status
		txn.Status = &status
	}
	return txn, nil
}

// TransformTransactions transforms every record in order. The first malformed date aborts the whole batch.
func (t *Transformer) TransformTransactions(records []entity.TransactionRecord) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, 0, len(records))
	for _, r := range records {
		txn, err := t.TransformTransaction(r)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	var firstErr error
	for _, layout := range dateLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
