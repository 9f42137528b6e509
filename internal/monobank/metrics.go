package monobank

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monobank_requests_total",
			Help: "Requests made to the monobank API",
		},
		[]string{"operation", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "monobank_request_duration_seconds",
			Help:    "Duration of monobank API requests",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20},
		},
		[]string{"operation"},
	)

	ratesFetchedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "monobank_rates_fetched_timestamp_seconds",
			Help: "Unix time of the exchange rate snapshot currently in use",
		},
	)
)

// observe records one finished request. status is 0 when no response came
// back.
func observe(op string, status int, started time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(op, label).Inc()
	requestDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}
