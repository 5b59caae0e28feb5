package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal counts assessments by strategy and verdict.
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aether_evaluations_total",
		Help: "Total number of telemetry assessments",
	}, []string{"mode", "status"})

	// CriticalAlertsTotal counts escalations, both classifier CRITICAL
	// verdicts and forecast threshold breaches.
	CriticalAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aether_critical_alerts_total",
		Help: "Total number of critical alerts raised",
	})

	// AuditRunsTotal counts full dataset audits by verdict.
	AuditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aether_audit_runs_total",
		Help: "Total number of dataset audit runs",
	}, []string{"verdict"})

	// DatasetFetchSeconds observes object-storage fetch latency.
	DatasetFetchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aether_dataset_fetch_duration_seconds",
		Help:    "Duration of object storage dataset fetches",
		Buckets: prometheus.DefBuckets,
	})

	// DatasetCacheHits and DatasetCacheMisses track the short-TTL cache.
	DatasetCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aether_dataset_cache_hits_total",
		Help: "Dataset cache hits",
	})
	DatasetCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aether_dataset_cache_misses_total",
		Help: "Dataset cache misses",
	})

	// FeedConnections gauges currently attached live-feed clients.
	FeedConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aether_feed_connections",
		Help: "Currently connected live feed clients",
	})
)
