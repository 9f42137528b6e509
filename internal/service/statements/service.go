package statements

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/monobank"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTTL = 10 * time.Minute

	// DefaultWindow is how far back statements go when no start is given.
	DefaultWindow = 30 * 24 * time.Hour
)

var ErrAccountNotFound = errors.New("account not found")

type Cache interface {
	Get(ctx context.Context, key string) ([]internal.Statement, bool, error)
	Set(ctx context.Context, key string, stmts []internal.Statement, ttl time.Duration) error
}

// Row is one statement prepared for display in the account currency, in UAH
// and in the selected target currency.
type Row struct {
	ID          string                `json:"id"`
	Time        time.Time             `json:"time"`
	Description string                `json:"description"`
	MCC         int                   `json:"mcc"`
	Hold        bool                  `json:"hold"`
	Currency    internal.CurrencyCode `json:"currency"`
	ConvertTo   internal.CurrencyCode `json:"convertTo"`
	Amount      internal.Amount       `json:"amount"`
	AmountUAH   internal.Amount       `json:"amountUah"`
	Converted   internal.Amount       `json:"converted"`
	Balance     internal.Amount       `json:"balance"`
}

type Service struct {
	api    monobank.API
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu          sync.RWMutex
	user        *internal.UserInfo
	userFetched time.Time
}

// New builds the service. cache may be nil, in which case every call goes
// to the bank.
func New(api monobank.API, cache Cache, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:    api,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Refresh pulls exchange rates and then the user info. A failed rates fetch
// is logged and does not stop the user info request.
func (s *Service) Refresh(ctx context.Context) (*internal.UserInfo, error) {
	if _, err := s.api.ExchangeRates(ctx); err != nil {
		s.logger.Warn("exchange rates refresh failed", zap.Error(err))
	}

	return s.fetchUserInfo(ctx)
}

// UserInfo returns the cached user info while it is younger than the TTL.
// Past that it is fetched again; if the refetch fails the old copy is served.
func (s *Service) UserInfo(ctx context.Context) (*internal.UserInfo, error) {
	s.mu.RLock()
	info, fetched := s.user, s.userFetched
	s.mu.RUnlock()

	if info == nil {
		return s.Refresh(ctx)
	}
	if s.now().Sub(fetched) < s.ttl {
		return info, nil
	}

	fresh, err := s.fetchUserInfo(ctx)
	if err != nil {
		s.logger.Warn("user info refetch failed, serving cached copy", zap.Time("fetched_at", fetched), zap.Error(err))
		return info, nil
	}
	return fresh, nil
}

func (s *Service) fetchUserInfo(ctx context.Context) (*internal.UserInfo, error) {
	info, err := s.api.UserInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("user info: %w", err)
	}

	s.mu.Lock()
	s.user = info
	s.userFetched = s.now()
	s.mu.Unlock()

	return info, nil
}

func (s *Service) Account(ctx context.Context, id string) (internal.Account, error) {
	info, err := s.UserInfo(ctx)
	if err != nil {
		return internal.Account{}, err
	}
	acc, ok := info.Account(id)
	if !ok {
		return internal.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return acc, nil
}

// Statements returns the operations of the account from from until to. A
// zero to means now. Results younger than the TTL are served from cache.
func (s *Service) Statements(ctx context.Context, accountID string, from, to time.Time) ([]internal.Statement, error) {
	key := cacheKey(accountID, from, to)

	if s.cache != nil {
		stmts, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("statement cache get failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return stmts, nil
		}
	}

	end := to
	if end.IsZero() {
		end = s.now()
	}

	stmts, err := s.api.Statements(ctx, accountID, from, end)
	if err != nil {
		return nil, fmt.Errorf("statements %s: %w", accountID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stmts, s.ttl); err != nil {
			s.logger.Warn("statement cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return stmts, nil
}

// AllStatements fetches statements for every account concurrently.
func (s *Service) AllStatements(ctx context.Context, from, to time.Time) (map[string][]internal.Statement, error) {
	info, err := s.UserInfo(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[string][]internal.Statement, len(info.Accounts))

	g, gctx := errgroup.WithContext(ctx)
	for _, acc := range info.Accounts {
		g.Go(func() error {
			stmts, err := s.Statements(gctx, acc.ID, from, to)
			if err != nil {
				return err
			}
			mu.Lock()
			out[acc.ID] = stmts
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Convert short-circuits same-currency conversions and otherwise asks the
// client.
func (s *Service) Convert(amount internal.Amount, from, to internal.CurrencyCode) internal.Amount {
	if from == to {
		return amount
	}
	return s.api.Convert(amount, from, to)
}

func (s *Service) Rows(ctx context.Context, accountID string, from, to time.Time, convertTo internal.CurrencyCode) ([]Row, error) {
	acc, err := s.Account(ctx, accountID)
	if err != nil {
		return nil, err
	}

	stmts, err := s.Statements(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	return s.BuildRows(acc, stmts, convertTo), nil
}

// BuildRows converts already fetched statements of acc into display rows.
func (s *Service) BuildRows(acc internal.Account, stmts []internal.Statement, convertTo internal.CurrencyCode) []Row {
	rows := make([]Row, 0, len(stmts))
	for _, st := range stmts {
		rows = append(rows, Row{
			ID:          st.ID,
			Time:        st.Time.Time,
			Description: st.Description,
			MCC:         st.MCC,
			Hold:        st.Hold,
			Currency:    acc.CurrencyCode,
			ConvertTo:   convertTo,
			Amount:      st.Amount,
			AmountUAH:   s.Convert(st.Amount, acc.CurrencyCode, internal.UAH),
			Converted:   s.Convert(st.Amount, acc.CurrencyCode, convertTo),
			Balance:     s.Convert(st.Balance, acc.CurrencyCode, convertTo),
		})
	}
	return rows
}

// DefaultFrom is the start of the default statement window ending at now. It
// is cut to the hour so that repeated requests share one cache entry.
func DefaultFrom(now time.Time) time.Time {
	return now.Add(-DefaultWindow).Truncate(time.Hour)
}

func cacheKey(accountID string, from, to time.Time) string {
	if to.IsZero() {
		return fmt.Sprintf("%s:%d:now", accountID, from.Unix())
	}
	return fmt.Sprintf("%s:%d:%d", accountID, from.Unix(), to.Unix())
}

var _ internal.Converter = (*Service)(nil)
