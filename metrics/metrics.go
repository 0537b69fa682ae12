// Package metrics holds the Prometheus instrumentation for the payroll
// engine's surfaces. Core packages stay metric-free; handlers, the
// scheduler, and the HTTP middleware call the helpers here.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payroll_records_processed_total",
		Help: "Total number of payroll records processed, by employee kind",
	}, []string{"kind"})

	processingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "payroll_processing_duration_seconds",
		Help:    "Duration of single-record payroll processing",
		Buckets: prometheus.DefBuckets,
	})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payroll_runs_total",
		Help: "Total number of batch pay runs, by result",
	}, []string{"result"})

	rosterSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "payroll_roster_size",
		Help: "Number of employees currently on the roster",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payroll_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payroll_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// ObserveProcessed records one processed payroll record.
func ObserveProcessed(kind string, duration time.Duration) {
	recordsProcessed.WithLabelValues(kind).Inc()
	processingDuration.Observe(duration.Seconds())
}

// ObserveRun records a batch pay run attempt with its result label.
func ObserveRun(result string) {
	runsTotal.WithLabelValues(result).Inc()
}

// SetRosterSize sets the roster size gauge.
func SetRosterSize(n int) {
	rosterSize.Set(float64(n))
}

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
