package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckCollector bundles Prometheus metrics for the feasibility surface and
// implements the checker's Recorder hook.
type CheckCollector struct {
	gatherer prometheus.Gatherer

	ChecksTotal     *prometheus.CounterVec
	ViolationsTotal *prometheus.CounterVec
	CheckDuration   prometheus.Histogram

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCheckCollector registers feasibility Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewCheckCollector(reg prometheus.Registerer) (*CheckCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feasibility_checks_total",
		Help: "Total feasibility passes, labeled by verdict and warning flag.",
	}, []string{"verdict", "warning"})
	if err := reg.Register(checks); err != nil {
		return nil, err
	}

	violations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feasibility_violations_total",
		Help: "Total violations found across feasibility passes, labeled by code.",
	}, []string{"code"})
	if err := reg.Register(violations); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "feasibility_check_duration_seconds",
		Help:    "Feasibility pass latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
	if err := reg.Register(duration); err != nil {
		return nil, err
	}

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total handled HTTP requests, labeled by path and status code.",
	}, []string{"path", "code"})
	if err := reg.Register(httpRequests); err != nil {
		return nil, err
	}

	httpDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"path"})
	if err := reg.Register(httpDurations); err != nil {
		return nil, err
	}

	return &CheckCollector{
		gatherer:        gatherer,
		ChecksTotal:     checks,
		ViolationsTotal: violations,
		CheckDuration:   duration,
		HTTPRequests:    httpRequests,
		HTTPDurations:   httpDurations,
	}, nil
}

// RecordCheck counts one completed feasibility pass.
func (c *CheckCollector) RecordCheck(accepted, warning bool, elapsed time.Duration) {
	if c == nil || c.ChecksTotal == nil {
		return
	}
	verdict := "rejected"
	if accepted {
		verdict = "accepted"
	}
	c.ChecksTotal.WithLabelValues(verdict, strconv.FormatBool(warning)).Inc()
	if c.CheckDuration != nil {
		c.CheckDuration.Observe(elapsed.Seconds())
	}
}

// RecordViolation counts one finding by code.
func (c *CheckCollector) RecordViolation(code string) {
	if c == nil || c.ViolationsTotal == nil {
		return
	}
	c.ViolationsTotal.WithLabelValues(code).Inc()
}

// Handler exposes the collector's metrics over HTTP.
func (c *CheckCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and durations for an HTTP handler.
func (c *CheckCollector) Middleware(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(path, strconv.Itoa(sw.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(path).Observe(time.Since(start).Seconds())
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
