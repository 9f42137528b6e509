package rates_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/api/http/rates"
	"mono-statements/internal/mock"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticRates struct{ snap *internal.RateSnapshot }

func (s staticRates) Rates() *internal.RateSnapshot { return s.snap }

func newRouter(t *testing.T, snap *internal.RateSnapshot, wantStatus int) http.Handler {
	t.Helper()
	audit := mock.NewMockRequestAuditLogger(t)
	audit.EXPECT().
		LogRequest(testifymock.Anything, testifymock.Anything, testifymock.MatchedBy(func(st *int) bool {
			return st != nil && *st == wantStatus
		}), (*string)(nil)).
		Return(nil).
		Once()

	r := chi.NewRouter()
	rates.New(staticRates{snap}, snap, audit).Register(r)
	return r
}

func testSnapshot() *internal.RateSnapshot {
	cross := 30.0
	buy, sell := 39.8, 40.6
	return internal.NewRateSnapshot([]internal.ExchangeRate{
		{CurrencyCodeA: internal.USD, CurrencyCodeB: internal.UAH, Date: internal.NewUnixTime(1700000000), RateCross: &cross},
		{CurrencyCodeA: internal.EUR, CurrencyCodeB: internal.UAH, Date: internal.NewUnixTime(1700000000), RateBuy: &buy, RateSell: &sell},
	}, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
}

func TestHandler_GetRates(t *testing.T) {
	router := newRouter(t, testSnapshot(), http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		FetchedAt time.Time `json:"fetchedAt"`
		Rates     []struct {
			CurrencyA string   `json:"currencyA"`
			CurrencyB string   `json:"currencyB"`
			RateCross *float64 `json:"rateCross"`
			RateBuy   *float64 `json:"rateBuy"`
		} `json:"rates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2026, body.FetchedAt.Year())
	require.Len(t, body.Rates, 2)
	assert.Equal(t, "USD", body.Rates[0].CurrencyA)
	assert.Equal(t, "UAH", body.Rates[0].CurrencyB)
	require.NotNil(t, body.Rates[0].RateCross)
	assert.Nil(t, body.Rates[0].RateBuy)
	assert.Equal(t, "EUR", body.Rates[1].CurrencyA)
}

func TestHandler_GetRates_NotLoaded(t *testing.T) {
	router := newRouter(t, nil, http.StatusServiceUnavailable)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "rates_not_loaded")
}

func TestHandler_Convert(t *testing.T) {
	router := newRouter(t, testSnapshot(), http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/convert?amount=100&from=USD&to=uah", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"from":"USD","to":"UAH","amount":"1","result":"30","resultMinor":3000}`, rec.Body.String())
}

func TestHandler_Convert_NumericCodes(t *testing.T) {
	router := newRouter(t, testSnapshot(), http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/convert?amount=100&from=980&to=840", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resultMinor":3`)
}

func TestHandler_Convert_BadInput(t *testing.T) {
	cases := map[string]string{
		"/api/v1/convert?amount=1.5&from=USD&to=UAH": "bad_request",
		"/api/v1/convert?amount=100&from=XYZ&to=UAH": "unsupported_currency",
		"/api/v1/convert?amount=100&from=USD":        "unsupported_currency",
	}
	for url, code := range cases {
		router := newRouter(t, testSnapshot(), http.StatusBadRequest)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		assert.Contains(t, rec.Body.String(), code, url)
	}
}
