package statements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/monobank"
	statementssvc "mono-statements/internal/service/statements"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	UserInfo(ctx context.Context) (*internal.UserInfo, error)
	Account(ctx context.Context, id string) (internal.Account, error)
	Rows(ctx context.Context, accountID string, from, to time.Time, convertTo internal.CurrencyCode) ([]statementssvc.Row, error)
}

type Handler struct {
	svc    Service
	logger internal.RequestAuditLogger
	now    func() time.Time
}

func New(svc Service, l internal.RequestAuditLogger) *Handler {
	return &Handler{svc: svc, logger: l, now: time.Now}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/accounts", h.getAccounts)
	r.Get("/api/v1/accounts/{id}/statements", h.getStatements)
}

type accountDTO struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Type        string          `json:"type"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	Cashback    string          `json:"cashbackType"`
}

type accountsResponse struct {
	ClientID string       `json:"clientId"`
	Name     string       `json:"name"`
	Accounts []accountDTO `json:"accounts"`
}

type rowDTO struct {
	ID          string          `json:"id"`
	Time        time.Time       `json:"time"`
	Description string          `json:"description"`
	MCC         int             `json:"mcc"`
	Hold        bool            `json:"hold"`
	Amount      decimal.Decimal `json:"amount"`
	AmountUAH   decimal.Decimal `json:"amountUah"`
	Converted   decimal.Decimal `json:"converted"`
	Balance     decimal.Decimal `json:"balance"`
}

type statementsResponse struct {
	AccountID string   `json:"accountId"`
	Currency  string   `json:"currency"`
	ConvertTo string   `json:"convertTo"`
	Rows      []rowDTO `json:"rows"`
}

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.UserInfo(r.Context())
	if err != nil {
		st := writeServiceErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	out := accountsResponse{ClientID: info.ClientID, Name: info.Name, Accounts: make([]accountDTO, 0, len(info.Accounts))}
	for _, a := range info.Accounts {
		out.Accounts = append(out.Accounts, accountDTO{
			ID:          a.ID,
			Label:       a.Label(),
			Type:        string(a.Type),
			Currency:    a.CurrencyCode.String(),
			Balance:     a.Balance.Major(),
			CreditLimit: a.CreditLimit.Major(),
			Cashback:    string(a.CashbackType),
		})
	}

	st := writeJSON(w, http.StatusOK, out)
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

func (h *Handler) getStatements(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	q := r.URL.Query()

	from, err := parseUnix(q.Get("from"), statementssvc.DefaultFrom(h.now()))
	if err != nil {
		st := writeErr(w, http.StatusBadRequest, internal.BizError("bad_request", "from must be unix seconds"))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
		return
	}
	to, err := parseUnix(q.Get("to"), time.Time{})
	if err != nil {
		st := writeErr(w, http.StatusBadRequest, internal.BizError("bad_request", "to must be unix seconds"))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
		return
	}
	convertTo := internal.UAH
	if raw := q.Get("convert_to"); raw != "" {
		convertTo, err = internal.NewCurrencyCode(raw)
		if err != nil {
			st := writeErr(w, http.StatusBadRequest, internal.BizError("unsupported_currency", err.Error()))
			_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
			return
		}
	}

	acc, err := h.svc.Account(r.Context(), accountID)
	if err != nil {
		st := writeServiceErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
		return
	}

	rows, err := h.svc.Rows(r.Context(), accountID, from, to, convertTo)
	if err != nil {
		st := writeServiceErr(w, err)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
		return
	}

	out := statementsResponse{
		AccountID: accountID,
		Currency:  acc.CurrencyCode.String(),
		ConvertTo: convertTo.String(),
		Rows:      make([]rowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, rowDTO{
			ID:          row.ID,
			Time:        row.Time,
			Description: row.Description,
			MCC:         row.MCC,
			Hold:        row.Hold,
			Amount:      row.Amount.Major(),
			AmountUAH:   row.AmountUAH.Major(),
			Converted:   row.Converted.Major(),
			Balance:     row.Balance.Major(),
		})
	}

	st := writeJSON(w, http.StatusOK, out)
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &accountID)
}

func parseUnix(raw string, def time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0), nil
}

func writeServiceErr(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, statementssvc.ErrAccountNotFound):
		return writeErr(w, http.StatusNotFound, internal.BizError("account_not_found", err.Error()))
	case errors.Is(err, monobank.ErrRequestFailed):
		return writeErr(w, http.StatusBadGateway, internal.BizError("bank_unavailable", "bank request failed"))
	default:
		return writeErr(w, http.StatusInternalServerError, internal.BizError("internal_error", "internal error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) int {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
	return status
}

func writeErr(w http.ResponseWriter, status int, err *internal.BusinessError) int {
	return writeJSON(w, status, err)
}
