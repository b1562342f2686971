// Package metrics exposes the escrow engine's counters to Prometheus.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escrow"

// PrometheusRecorder implements core.MetricsRecorder and the HTTP and pool
// instrumentation around it
type PrometheusRecorder struct {
	transitionsTotal   *prometheus.CounterVec
	rejectionsTotal    *prometheus.CounterVec
	payoutsTotal       *prometheus.CounterVec
	releaseDuration    *prometheus.HistogramVec
	disputesTotal      *prometheus.CounterVec
	breakerTransitions *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge
}

var _ coreport.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates every collector and registers it on reg
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Lifecycle transitions applied by operation, from-status and to-status.",
		}, []string{"operation", "from", "to"}),
		rejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Operations refused by operation and error code.",
		}, []string{"operation", "code"}),
		payoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_attempts_total",
			Help:      "Payout provider calls by recipient role and result.",
		}, []string{"role", "result"}),
		releaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "release_duration_seconds",
			Help:      "Time to settle a release or dispute split.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
		disputesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispute_status_changes_total",
			Help:      "Disputes entering a status.",
		}, []string{"status"}),
		breakerTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "circuitbreaker",
			Name:      "state_transitions_total",
			Help:      "Payout circuit breaker state transitions.",
		}, []string{"from_state", "to_state"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_open_connections",
			Help: "Number of open database connections.",
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_in_use_connections",
			Help: "Number of in-use database connections.",
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_idle_connections",
			Help: "Number of idle database connections.",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_wait_count_total",
			Help: "Total number of connections waited for.",
		}),
	}

	reg.MustRegister(
		r.transitionsTotal,
		r.rejectionsTotal,
		r.payoutsTotal,
		r.releaseDuration,
		r.disputesTotal,
		r.breakerTransitions,
		r.httpRequestsTotal,
		r.httpRequestDuration,
		r.dbOpenConnections,
		r.dbInUseConnections,
		r.dbIdleConnections,
		r.dbWaitCount,
	)
	return r
}

func (r *PrometheusRecorder) TransitionApplied(operation, from, to string) {
	r.transitionsTotal.WithLabelValues(operation, from, to).Inc()
}

func (r *PrometheusRecorder) TransitionRejected(operation string, errorCode int) {
	r.rejectionsTotal.WithLabelValues(operation, strconv.Itoa(errorCode)).Inc()
}

func (r *PrometheusRecorder) PayoutAttempted(role, result string) {
	r.payoutsTotal.WithLabelValues(role, result).Inc()
}

func (r *PrometheusRecorder) ObserveRelease(kind string, duration time.Duration) {
	r.releaseDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) DisputeStatusChanged(status string) {
	r.disputesTotal.WithLabelValues(status).Inc()
}

// BreakerTransition counts a payout circuit breaker state change
func (r *PrometheusRecorder) BreakerTransition(from, to string) {
	r.breakerTransitions.WithLabelValues(from, to).Inc()
}

// ObservePool copies one sql.DBStats sample into the pool gauges
func (r *PrometheusRecorder) ObservePool(stats sql.DBStats) {
	r.dbOpenConnections.Set(float64(stats.OpenConnections))
	r.dbInUseConnections.Set(float64(stats.InUse))
	r.dbIdleConnections.Set(float64(stats.Idle))
	r.dbWaitCount.Set(float64(stats.WaitCount))
}

// Middleware returns a gin middleware that records request metrics
func (r *PrometheusRecorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		timer := prometheus.NewTimer(r.httpRequestDuration.WithLabelValues(c.Request.Method, path))

		c.Next()

		timer.ObserveDuration()
		r.httpRequestsTotal.WithLabelValues(c.Request.Method, path, statusBucket(c.Writer.Status())).Inc()
	}
}

// Handler serves the collectors registered on gatherer
func Handler(gatherer prometheus.Gatherer) gin.HandlerFunc {
	h := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx)
func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
