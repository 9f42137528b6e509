package rates

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"mono-statements/internal"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type RatesSource interface {
	Rates() *internal.RateSnapshot
}

type Handler struct {
	rates  RatesSource
	conv   internal.Converter
	logger internal.RequestAuditLogger
}

func New(src RatesSource, conv internal.Converter, l internal.RequestAuditLogger) *Handler {
	return &Handler{rates: src, conv: conv, logger: l}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/rates", h.getRates)
	r.Get("/api/v1/convert", h.convert)
}

type rateDTO struct {
	CurrencyA string    `json:"currencyA"`
	CurrencyB string    `json:"currencyB"`
	Date      time.Time `json:"date"`
	RateBuy   *float64  `json:"rateBuy,omitempty"`
	RateSell  *float64  `json:"rateSell,omitempty"`
	RateCross *float64  `json:"rateCross,omitempty"`
}

type ratesResponse struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Rates     []rateDTO `json:"rates"`
}

type convertResponse struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	Result      decimal.Decimal `json:"result"`
	ResultMinor internal.Amount `json:"resultMinor"`
}

func (h *Handler) getRates(w http.ResponseWriter, r *http.Request) {
	snap := h.rates.Rates()
	if snap.IsEmpty() {
		st := writeErr(w, http.StatusServiceUnavailable, internal.BizError("rates_not_loaded", "exchange rates were not fetched yet"))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	out := ratesResponse{FetchedAt: snap.FetchedAt, Rates: make([]rateDTO, 0, len(snap.Rates))}
	for _, rate := range snap.Rates {
		out.Rates = append(out.Rates, rateDTO{
			CurrencyA: rate.CurrencyCodeA.String(),
			CurrencyB: rate.CurrencyCodeB.String(),
			Date:      rate.Date.Time,
			RateBuy:   rate.RateBuy,
			RateSell:  rate.RateSell,
			RateCross: rate.RateCross,
		})
	}

	st := writeJSON(w, http.StatusOK, out)
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

// convert takes the amount in minor units.
func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseInt(q.Get("amount"), 10, 64)
	if err != nil {
		st := writeErr(w, http.StatusBadRequest, internal.BizError("bad_request", "amount must be an integer in minor units"))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	from, err := internal.NewCurrencyCode(q.Get("from"))
	if err != nil {
		st := writeErr(w, http.StatusBadRequest, internal.BizError("unsupported_currency", err.Error()))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}
	to, err := internal.NewCurrencyCode(q.Get("to"))
	if err != nil {
		st := writeErr(w, http.StatusBadRequest, internal.BizError("unsupported_currency", err.Error()))
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	res := h.conv.Convert(internal.Amount(amount), from, to)

	st := writeJSON(w, http.StatusOK, convertResponse{
		From:        from.String(),
		To:          to.String(),
		Amount:      internal.Amount(amount).Major(),
		Result:      res.Major(),
		ResultMinor: res,
	})
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
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
