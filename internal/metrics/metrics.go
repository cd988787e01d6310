package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "advice_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route"},
	)

	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_assessments_total",
			Help: "Total number of advice assessments produced by engine",
		},
		[]string{"engine"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advice_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
