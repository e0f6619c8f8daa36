package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeRateNotFound     = "rate_not_found"
	OutcomeRatesUnavailable = "rates_unavailable"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// ConversionsTotal counts conversions by outcome.
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_conversions_total",
			Help: "Total number of currency conversions by outcome",
		},
		[]string{"outcome"},
	)

	// RatesCacheTotal counts rate snapshot cache lookups by result.
	RatesCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rates_cache_total",
			Help: "Exchange rate snapshot cache lookups by result",
		},
		[]string{"result"},
	)

	// RatesFetchDuration observes Monobank fetch latency by status.
	RatesFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "monobank_rates_fetch_duration_seconds",
			Help:    "Duration of exchange rate fetches from the Monobank API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
