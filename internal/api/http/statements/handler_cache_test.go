package statements

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/mock"
	apimock "mono-statements/internal/monobank/mock"
	statementssvc "mono-statements/internal/service/statements"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
)

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]internal.Statement
}

func (c *memoryCache) Get(_ context.Context, key string) ([]internal.Statement, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stmts, ok := c.items[key]
	return stmts, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, stmts []internal.Statement, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = make(map[string][]internal.Statement)
	}
	c.items[key] = stmts
	return nil
}

func TestHandler_GetStatements_DefaultWindowIsCached(t *testing.T) {
	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(&internal.UserInfo{
		Accounts: []internal.Account{{ID: "a", CurrencyCode: internal.UAH}},
	}, nil).Once()
	api.EXPECT().Statements(testifymock.Anything, "a", testifymock.Anything, testifymock.Anything).
		Return([]internal.Statement{{ID: "s1", Amount: -100}}, nil).Once()

	audit := mock.NewMockRequestAuditLogger(t)
	audit.EXPECT().LogRequest(testifymock.Anything, testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Return(nil).Times(3)

	h := New(statementssvc.New(api, &memoryCache{}, 10*time.Minute, nil), audit)
	r := chi.NewRouter()
	h.Register(r)

	base := time.Date(2026, 10, 19, 10, 0, 5, 0, time.UTC)
	for _, offset := range []time.Duration{0, 2 * time.Second, time.Minute} {
		h.now = func() time.Time { return base.Add(offset) }

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/a/statements", nil))

		assert.Equal(t, http.StatusOK, rec.Code, offset)
		assert.Contains(t, rec.Body.String(), `"s1"`, offset)
	}
}
