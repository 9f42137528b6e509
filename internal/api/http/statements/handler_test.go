package statements_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/api/http/statements"
	"mono-statements/internal/mock"
	"mono-statements/internal/monobank"
	apimock "mono-statements/internal/monobank/mock"
	statementssvc "mono-statements/internal/service/statements"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userInfo() *internal.UserInfo {
	return &internal.UserInfo{
		ClientID: "c1",
		Name:     "Test",
		Accounts: []internal.Account{
			{ID: "uah", Type: internal.AccountBlack, CurrencyCode: internal.UAH, Balance: 1234567, CashbackType: internal.CashbackUAH},
			{ID: "usd", Type: internal.AccountWhite, CurrencyCode: internal.USD, Balance: 5000, CreditLimit: 0},
		},
	}
}

func expectAudit(t *testing.T, status int, accountID *string) *mock.MockRequestAuditLogger {
	t.Helper()
	audit := mock.NewMockRequestAuditLogger(t)
	audit.EXPECT().
		LogRequest(testifymock.Anything, testifymock.Anything, testifymock.MatchedBy(func(st *int) bool {
			return st != nil && *st == status
		}), accountID).
		Return(nil).
		Once()
	return audit
}

func newRouter(api *apimock.MockAPI, audit *mock.MockRequestAuditLogger) http.Handler {
	r := chi.NewRouter()
	statements.New(statementssvc.New(api, nil, 0, nil), audit).Register(r)
	return r
}

func TestHandler_GetAccounts(t *testing.T) {
	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(userInfo(), nil).Once()

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusOK, nil)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ClientID string `json:"clientId"`
		Accounts []struct {
			ID       string `json:"id"`
			Label    string `json:"label"`
			Currency string `json:"currency"`
			Balance  string `json:"balance"`
			Cashback string `json:"cashbackType"`
		} `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "c1", body.ClientID)
	require.Len(t, body.Accounts, 2)
	assert.Equal(t, "Black UAH", body.Accounts[0].Label)
	assert.Equal(t, "12345.67", body.Accounts[0].Balance)
	assert.Equal(t, "UAH", body.Accounts[0].Cashback)
	assert.Equal(t, "White USD", body.Accounts[1].Label)
	assert.Equal(t, "USD", body.Accounts[1].Currency)
}

func TestHandler_GetAccounts_BankDown(t *testing.T) {
	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, monobank.ErrRequestFailed).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(nil, fmt.Errorf("wrapped: %w", monobank.ErrRequestFailed)).Once()

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusBadGateway, nil)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "bank_unavailable")
}

func TestHandler_GetStatements(t *testing.T) {
	accountID := "usd"
	from := time.Unix(1700000000, 0)
	to := time.Unix(1700086400, 0)

	cross := 40.0
	snap := internal.NewRateSnapshot([]internal.ExchangeRate{
		{CurrencyCodeA: internal.USD, CurrencyCodeB: internal.UAH, RateCross: &cross},
	}, time.Now())

	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(userInfo(), nil).Once()
	api.EXPECT().Statements(testifymock.Anything, "usd", from, to).Return([]internal.Statement{
		{ID: "s1", Time: internal.NewUnixTime(1700001000), Description: "Steam", MCC: 5816, Amount: -1000, Balance: 4000},
	}, nil).Once()
	api.EXPECT().Convert(testifymock.Anything, testifymock.Anything, testifymock.Anything).RunAndReturn(snap.Convert)

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusOK, &accountID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/usd/statements?from=1700000000&to=1700086400&convert_to=UAH", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		AccountID string `json:"accountId"`
		Currency  string `json:"currency"`
		ConvertTo string `json:"convertTo"`
		Rows      []struct {
			ID        string `json:"id"`
			Amount    string `json:"amount"`
			AmountUAH string `json:"amountUah"`
			Converted string `json:"converted"`
			Balance   string `json:"balance"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "usd", body.AccountID)
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, "UAH", body.ConvertTo)
	require.Len(t, body.Rows, 1)
	assert.Equal(t, "-10", body.Rows[0].Amount)
	assert.Equal(t, "-400", body.Rows[0].AmountUAH)
	assert.Equal(t, "-400", body.Rows[0].Converted)
	assert.Equal(t, "1600", body.Rows[0].Balance)
}

func TestHandler_GetStatements_EmptyKeepsAccountCurrency(t *testing.T) {
	accountID := "usd"

	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(userInfo(), nil).Once()
	api.EXPECT().Statements(testifymock.Anything, "usd", testifymock.Anything, testifymock.Anything).
		Return([]internal.Statement{}, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusOK, &accountID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/usd/statements?convert_to=EUR", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Currency  string            `json:"currency"`
		ConvertTo string            `json:"convertTo"`
		Rows      []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, "EUR", body.ConvertTo)
	assert.NotNil(t, body.Rows)
	assert.Empty(t, body.Rows)
}

func TestHandler_GetStatements_UnknownAccount(t *testing.T) {
	accountID := "eur"

	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(userInfo(), nil).Once()

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusNotFound, &accountID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/eur/statements", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "account_not_found")
}

func TestHandler_GetStatements_BadQuery(t *testing.T) {
	accountID := "usd"
	cases := map[string]string{
		"/api/v1/accounts/usd/statements?from=yesterday": "bad_request",
		"/api/v1/accounts/usd/statements?to=x":           "bad_request",
		"/api/v1/accounts/usd/statements?convert_to=ZZZ": "unsupported_currency",
	}
	for url, code := range cases {
		api := apimock.NewMockAPI(t)

		rec := httptest.NewRecorder()
		newRouter(api, expectAudit(t, http.StatusBadRequest, &accountID)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		assert.Contains(t, rec.Body.String(), code, url)
	}
}

func TestHandler_GetStatements_InternalError(t *testing.T) {
	accountID := "uah"

	api := apimock.NewMockAPI(t)
	api.EXPECT().ExchangeRates(testifymock.Anything).Return(nil, nil).Once()
	api.EXPECT().UserInfo(testifymock.Anything).Return(userInfo(), nil).Once()
	api.EXPECT().Statements(testifymock.Anything, "uah", testifymock.Anything, testifymock.Anything).
		Return(nil, errors.New("unexpected")).Once()

	rec := httptest.NewRecorder()
	newRouter(api, expectAudit(t, http.StatusInternalServerError, &accountID)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/uah/statements", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
