// Package metrics exposes the Prometheus collectors for parser, task and
// HTTP activity.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smart_todo"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics groups the service collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	parseDuration    prometheus.Histogram
	parseConfidence  prometheus.Histogram
	parseFields      *prometheus.CounterVec
	taskOperations   *prometheus.CounterVec
	calendarFailures *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// MustNew constructs Metrics and registers them with reg, panicking on a
// registration conflict. Tests pass a fresh prometheus.NewRegistry().
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		parseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "duration_seconds",
			Help:      "Time spent parsing one task description.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		}),
		parseConfidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "overall_confidence",
			Help:      "Overall confidence of parse results.",
			Buckets:   prometheus.LinearBuckets(0.2, 0.1, 9),
		}),
		parseFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "fields_detected_total",
			Help:      "Parse results in which a field was detected from the text rather than defaulted.",
		}, []string{"field"}),
		taskOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tasks",
			Name:      "operations_total",
			Help:      "Task use case calls by operation and outcome.",
		}, []string{"operation", "status"}),
		calendarFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "sync_failures_total",
			Help:      "Calendar mirror calls that failed.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.parseDuration,
		m.parseConfidence,
		m.parseFields,
		m.taskOperations,
		m.calendarFailures,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ParseObservation describes one parse for ObserveParse.
type ParseObservation struct {
	Duration         time.Duration
	Overall          float64
	DateDetected     bool
	PriorityDetected bool
	CategoryDetected bool
}

// ObserveParse records latency, confidence and detected fields of a parse.
func (m *Metrics) ObserveParse(o ParseObservation) {
	if m == nil {
		return
	}
	m.parseDuration.Observe(o.Duration.Seconds())
	m.parseConfidence.Observe(o.Overall)
	if o.DateDetected {
		m.parseFields.WithLabelValues("date").Inc()
	}
	if o.PriorityDetected {
		m.parseFields.WithLabelValues("priority").Inc()
	}
	if o.CategoryDetected {
		m.parseFields.WithLabelValues("category").Inc()
	}
}

// IncTaskOperation counts a use case call. A nil err counts as StatusOK.
func (m *Metrics) IncTaskOperation(operation string, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.taskOperations.WithLabelValues(operation, status).Inc()
}

// IncCalendarFailure counts a failed calendar mirror call.
func (m *Metrics) IncCalendarFailure(operation string) {
	if m == nil {
		return
	}
	m.calendarFailures.WithLabelValues(operation).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
