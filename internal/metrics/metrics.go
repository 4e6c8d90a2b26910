// Package metrics defines Prometheus metrics for the fight graph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fightgraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fightgraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fightgraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fightgraph_reconcile_duration_seconds",
			Help:    "Fight history reconciliation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	StreakBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fightgraph_streak_batch_size",
			Help:    "Number of fighters per streak batch request",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		},
	)

	FighterCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fightgraph_fighters_total",
			Help: "Total fighter count",
		},
	)

	BoutCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fightgraph_bouts_total",
			Help: "Total bout row count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ReconcileDuration, StreakBatchSize,
		FighterCount, BoutCount,
	)
}
