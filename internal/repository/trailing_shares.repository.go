package repository

import (
	"context"
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
)

//go:generate mockgen -source=trailing_shares.repository.go -destination=mocks/mock_trailing_shares.repository.go

// TrailingSharesRepository returns the latest shares outstanding for
// a symbol. The figure is current, not per-period. A nil value with a
// nil error means the provider did not report one.
type TrailingSharesRepository interface {
	Get(ctx context.Context, symbol string) (*float64, error)
}

type trailingSharesRepositoryHandler struct {
	getEquity func(symbol string) (*finance.Equity, error)
}

func NewTrailingSharesRepository() TrailingSharesRepository {
	return trailingSharesRepositoryHandler{
		getEquity: equity.Get,
	}
}

func (h trailingSharesRepositoryHandler) Get(ctx context.Context, symbol string) (*float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := h.getEquity(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if e == nil || e.SharesOutstanding <= 0 {
		return nil, nil
	}

	shares := float64(e.SharesOutstanding)
	return &shares, nil
}
