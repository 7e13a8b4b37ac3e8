// Package metrics exposes the Prometheus instrumentation for calhub:
// HTTP request counters and latencies, database operation latencies, and
// sync outcome counters.
//
// The sync warning counter is the observable channel for failures that
// are deliberately downgraded to warnings (a sync-state upsert or a
// refreshed-token persist failing after the primary operation already
// succeeded). Tests and operators can assert on it instead of scraping
// log text.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for the per-calendar sync counter.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Warning kind labels for downgraded failures.
const (
	WarnSyncStateUpdate = "sync_state_update"
	WarnTokenPersist    = "token_persist"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calhub_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calhub_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	dbLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calhub_db_latency_seconds",
		Help:    "Histogram of database operation latencies.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	syncCalendarsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calhub_sync_calendars_total",
		Help: "Per-calendar sync outcomes.",
	}, []string{"provider", "outcome"})

	syncWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calhub_sync_warnings_total",
		Help: "Failures downgraded to warnings because the primary operation already succeeded.",
	}, []string{"kind"})
)

// Handler exposes the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveDB records the latency of one database operation. Use it with
// defer:
//
//	defer metrics.ObserveDB("events.save_many")()
func ObserveDB(operation string) func() {
	start := time.Now()
	return func() {
		dbLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// ObserveHTTP records one finished HTTP request.
func ObserveHTTP(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SyncCalendar counts one per-calendar sync outcome.
func SyncCalendar(provider, outcome string) {
	syncCalendarsTotal.WithLabelValues(provider, outcome).Inc()
}

// SyncWarning counts one downgraded failure.
func SyncWarning(kind string) {
	syncWarningsTotal.WithLabelValues(kind).Inc()
}
