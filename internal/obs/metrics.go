package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "estimate",
		Name:      "operation_duration_seconds",
		Help:      "Duration of outbound calls and store queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "outcome"})

	// HTTPRequests counts served API requests.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estimate",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
)
