package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mono-statements/internal/api/http/middleware"
	"mono-statements/internal/mock"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
)

func serve(t *testing.T, v *mock.MockAPIKeyValidator, header, value string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	middleware.APIKeyAuth(v)(next).ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyAuth_Missing(t *testing.T) {
	rec := serve(t, mock.NewMockAPIKeyValidator(t), "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_key_missing")
}

func TestAPIKeyAuth_Valid(t *testing.T) {
	v := mock.NewMockAPIKeyValidator(t)
	v.EXPECT().Validate(testifymock.Anything, "good").Return(true, true, nil).Once()

	rec := serve(t, v, "X-API-Key", " good ")

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestAPIKeyAuth_Bearer(t *testing.T) {
	v := mock.NewMockAPIKeyValidator(t)
	v.EXPECT().Validate(testifymock.Anything, "good").Return(true, true, nil).Once()

	rec := serve(t, v, "Authorization", "Bearer good")

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestAPIKeyAuth_Unknown(t *testing.T) {
	v := mock.NewMockAPIKeyValidator(t)
	v.EXPECT().Validate(testifymock.Anything, "bad").Return(false, false, nil).Once()

	rec := serve(t, v, "X-API-Key", "bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_api_key")
}

func TestAPIKeyAuth_Revoked(t *testing.T) {
	v := mock.NewMockAPIKeyValidator(t)
	v.EXPECT().Validate(testifymock.Anything, "old").Return(true, false, nil).Once()

	rec := serve(t, v, "X-API-Key", "old")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestAPIKeyAuth_ValidatorError(t *testing.T) {
	v := mock.NewMockAPIKeyValidator(t)
	v.EXPECT().Validate(testifymock.Anything, "k").Return(false, false, errors.New("db down")).Once()

	rec := serve(t, v, "X-API-Key", "k")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
