package monobank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"mono-statements/internal"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.monobank.ua"

	maxBodyBytes   = 4 << 20
	requestTimeout = 20 * time.Second

	pathClientInfo = "/personal/client-info"
	pathStatement  = "/personal/statement/%s/%d/%d"
	pathCurrency   = "/bank/currency"

	tokenHeader = "X-Token"
)

type Client struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time

	rates atomic.Pointer[internal.RateSnapshot]
}

func New(apiKey string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
		now:    time.Now,
	}, nil
}

// get issues an authenticated GET and decodes the body into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return c.fail(op, path, 0, errNetwork, fmt.Errorf("parse url: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.fail(op, path, 0, errNetwork, fmt.Errorf("new request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.apiKey)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(op, 0, started)
		return c.fail(op, path, 0, errNetwork, fmt.Errorf("do request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()
	observe(op, resp.StatusCode, started)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.fail(op, path, resp.StatusCode, errNetwork, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(op, path, resp.StatusCode, errNetwork, fmt.Errorf("monobank http %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return c.fail(op, path, resp.StatusCode, errDecode, fmt.Errorf("unmarshal response: %w", err))
	}
	return nil
}

func (c *Client) UserInfo(ctx context.Context) (*internal.UserInfo, error) {
	var out internal.UserInfo
	if err := c.get(ctx, "user info", pathClientInfo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Statements returns the operations of account within [from, to). The window
// is passed through as is.
func (c *Client) Statements(ctx context.Context, accountID string, from, to time.Time) ([]internal.Statement, error) {
	path := fmt.Sprintf(pathStatement, url.PathEscape(accountID), from.Unix(), to.Unix())

	var out []internal.Statement
	if err := c.get(ctx, "statements", path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StatementsSince is Statements with the window ending now.
func (c *Client) StatementsSince(ctx context.Context, accountID string, from time.Time) ([]internal.Statement, error) {
	return c.Statements(ctx, accountID, from, c.now())
}

// ExchangeRates fetches the bank rates and, on success, replaces the cached
// snapshot. A failed fetch leaves the cache untouched.
func (c *Client) ExchangeRates(ctx context.Context) ([]internal.ExchangeRate, error) {
	out, _, err := c.refreshRates(ctx)
	return out, err
}

// FetchAndSaveRates refreshes the cache and hands the new snapshot to storage.
func (c *Client) FetchAndSaveRates(ctx context.Context, storage RatesStorage) (*internal.RateSnapshot, error) {
	_, snap, err := c.refreshRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchange rates: %w", err)
	}

	if err := storage.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("save rates: %w", err)
	}
	return snap, nil
}

func (c *Client) refreshRates(ctx context.Context) ([]internal.ExchangeRate, *internal.RateSnapshot, error) {
	var out []internal.ExchangeRate
	if err := c.get(ctx, "exchange rates", pathCurrency, &out); err != nil {
		return nil, nil, err
	}

	snap := internal.NewRateSnapshot(out, c.now())
	c.rates.Store(snap)
	ratesFetchedAt.Set(float64(snap.FetchedAt.Unix()))
	return out, snap, nil
}

// Restore installs a previously saved snapshot. Empty snapshots are ignored.
func (c *Client) Restore(snap *internal.RateSnapshot) {
	if snap.IsEmpty() {
		return
	}
	c.rates.Store(internal.NewRateSnapshot(snap.Rates, snap.FetchedAt))
	ratesFetchedAt.Set(float64(snap.FetchedAt.Unix()))
}

// Rates returns the current snapshot; nil until the first successful fetch.
func (c *Client) Rates() *internal.RateSnapshot {
	return c.rates.Load()
}

// Convert runs against whatever snapshot is current. It never does I/O.
func (c *Client) Convert(amount internal.Amount, from, to internal.CurrencyCode) internal.Amount {
	return c.rates.Load().Convert(amount, from, to)
}
