package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of queries processed, by resolved category",
		},
		[]string{"category"},
	)

	QueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_query_failures_total",
			Help: "Total number of queries that hit a data-access failure",
		},
		[]string{"category", "error_code"},
	)

	QueryFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_query_fallbacks_total",
			Help: "Total number of queries answered with a no-match fallback message",
		},
		[]string{"category"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_query_duration_seconds",
			Help: "Duration of query execution in seconds",
		},
		[]string{"category"},
	)
)
