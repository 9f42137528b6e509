package monobank

import (
	"context"
	"time"

	"mono-statements/internal"
)

type API interface {
	UserInfo(ctx context.Context) (*internal.UserInfo, error)
	Statements(ctx context.Context, accountID string, from, to time.Time) ([]internal.Statement, error)
	ExchangeRates(ctx context.Context) ([]internal.ExchangeRate, error)
	Rates() *internal.RateSnapshot
	Convert(amount internal.Amount, from, to internal.CurrencyCode) internal.Amount
}

type RatesStorage interface {
	SaveSnapshot(ctx context.Context, snap *internal.RateSnapshot) error
}

var _ API = (*Client)(nil)
