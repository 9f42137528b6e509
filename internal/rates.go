package internal

import (
	"math"
	"time"
)

// ExchangeRate is a bank quote for the pair (CurrencyCodeA, CurrencyCodeB).
// Convertible majors carry RateBuy and RateSell, everything else RateCross.
type ExchangeRate struct {
	CurrencyCodeA CurrencyCode `json:"currencyCodeA"`
	CurrencyCodeB CurrencyCode `json:"currencyCodeB"`
	Date          UnixTime     `json:"date"`
	RateSell      *float64     `json:"rateSell,omitempty"`
	RateBuy       *float64     `json:"rateBuy,omitempty"`
	RateCross     *float64     `json:"rateCross,omitempty"`
}

// Converter converts an amount between currencies.
type Converter interface {
	Convert(amount Amount, from, to CurrencyCode) Amount
}

// RateSnapshot is the result of one successful rates fetch. It is never
// modified after creation; a newer fetch produces a new snapshot.
type RateSnapshot struct {
	Rates     []ExchangeRate `json:"rates"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

func NewRateSnapshot(rates []ExchangeRate, fetchedAt time.Time) *RateSnapshot {
	cp := make([]ExchangeRate, len(rates))
	copy(cp, rates)
	return &RateSnapshot{Rates: cp, FetchedAt: fetchedAt}
}

func (s *RateSnapshot) IsEmpty() bool {
	return s == nil || len(s.Rates) == 0
}

// Age reports how old the snapshot is. An empty snapshot is infinitely old.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	if s == nil || s.FetchedAt.IsZero() {
		return time.Duration(math.MaxInt64)
	}
	return now.Sub(s.FetchedAt)
}

// Convert uses the first cached pair that mentions from on either side.
// The counter currency of that pair is not checked against to, and from == to
// is not special-cased. With no matching pair the amount is returned as is.
func (s *RateSnapshot) Convert(amount Amount, from, to CurrencyCode) Amount {
	if s == nil {
		return amount
	}

	for _, rate := range s.Rates {
		if rate.CurrencyCodeA != from && rate.CurrencyCodeB != from {
			continue
		}

		m := rate.multiplier()
		if rate.CurrencyCodeA == from {
			m = 1 / m
		}

		res := float64(amount) / m
		if math.IsNaN(res) || math.IsInf(res, 0) {
			return amount
		}
		return Amount(res)
	}
	return amount
}

// multiplier is units of B per unit of A. A quote with only one of buy/sell
// yields 1.
func (r ExchangeRate) multiplier() float64 {
	switch {
	case r.RateCross != nil:
		return *r.RateCross
	case r.RateBuy != nil && r.RateSell != nil:
		return (*r.RateBuy + *r.RateSell) / 2
	default:
		return 1
	}
}
