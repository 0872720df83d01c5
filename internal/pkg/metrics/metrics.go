// Package metrics exposes Prometheus collectors for HTTP traffic and ledger activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tracker"

// Metrics owns a private registry so several instances can coexist in tests.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	loansCreated prometheus.Counter
	lentAmount   prometheus.Counter
	repayments   *prometheus.CounterVec
	repaidAmount prometheus.Counter
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		loansCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_created_total",
			Help:      "Loans recorded.",
		}),
		lentAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_amount_total",
			Help:      "Sum of the original amounts of recorded loans.",
		}),
		repayments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repayments_total",
			Help:      "Repayments recorded, by whether they settled the loan.",
		}, []string{"outcome"}),
		repaidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repayments_amount_total",
			Help:      "Sum of all repayment amounts.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.loansCreated,
		m.lentAmount,
		m.repayments,
		m.repaidAmount,
	)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// LoanCreated records a new loan of the given amount.
func (m *Metrics) LoanCreated(amount float64) {
	if m == nil {
		return
	}
	m.loansCreated.Inc()
	m.lentAmount.Add(amount)
}

// RepaymentRecorded records a repayment and whether it settled the loan.
func (m *Metrics) RepaymentRecorded(amount float64, completed bool) {
	if m == nil {
		return
	}
	outcome := "partial"
	if completed {
		outcome = "paid"
	}
	m.repayments.WithLabelValues(outcome).Inc()
	m.repaidAmount.Add(amount)
}

// Middleware counts and times every request by its chi route pattern.
func (m *Metrics) Middleware() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			h.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
		return http.HandlerFunc(fn)
	}
}
