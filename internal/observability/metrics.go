package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	AggregateWriteConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregate_write_conflicts_total",
			Help: "Optimistic version conflicts on profile and post writes",
		},
		[]string{"aggregate"},
	)

	GitHubLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "github_lookups_total",
			Help: "Outbound GitHub repository lookups by result",
		},
		[]string{"result"},
	)
)
