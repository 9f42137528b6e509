package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"mono-statements/internal"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth lets a request through only with an active key, sent either in
// X-API-Key or as a bearer token.
func APIKeyAuth(validator internal.APIKeyValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFromRequest(r)
			if key == "" {
				writeBizErr(w, http.StatusUnauthorized, internal.BizError("api_key_missing", "missing X-API-Key"))
				return
			}

			exists, active, err := validator.Validate(r.Context(), key)
			switch {
			case err != nil:
				writeBizErr(w, http.StatusInternalServerError, internal.BizError("internal_error", "internal error"))
			case !exists:
				writeBizErr(w, http.StatusUnauthorized, internal.BizError("invalid_api_key", "invalid api key"))
			case !active:
				writeBizErr(w, http.StatusForbidden, internal.BizError("api_key_revoked", "api key is revoked"))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func keyFromRequest(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(apiKeyHeader)); key != "" {
		return key
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func writeBizErr(w http.ResponseWriter, status int, err *internal.BusinessError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(err)
}
