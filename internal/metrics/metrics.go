package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/config"
)

// Metrics owns a private registry. Every method is safe on a nil receiver.
type Metrics struct {
	registry      *prometheus.Registry
	httpReqCnt    *prometheus.CounterVec
	httpDur       *prometheus.HistogramVec
	signups       prometheus.Counter
	logins        *prometheus.CounterVec
	created       prometheus.Counter
	statusChanges *prometheus.CounterVec
	updates       prometheus.Counter
	deletions     prometheus.Counter
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"})
	r.MustRegister(httpReqCnt, httpDur)

	signups := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "signups_total"})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "logins_total"}, []string{"outcome"})
	created := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "complaints_created_total"})
	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "complaint_status_changes_total"}, []string{"status"})
	updates := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "complaint_updates_total"})
	deletions := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "complaints_deleted_total"})
	r.MustRegister(signups, logins, created, statusChanges, updates, deletions)

	return &Metrics{
		registry:      r,
		httpReqCnt:    httpReqCnt,
		httpDur:       httpDur,
		signups:       signups,
		logins:        logins,
		created:       created,
		statusChanges: statusChanges,
		updates:       updates,
		deletions:     deletions,
	}
}

func (m *Metrics) Signup() {
	if m != nil {
		m.signups.Inc()
	}
}

// Login records a login attempt; outcome is "success" or "failure".
func (m *Metrics) Login(success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ComplaintCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *Metrics) StatusChanged(status string) {
	if m != nil {
		m.statusChanges.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) UpdateAdded() {
	if m != nil {
		m.updates.Inc()
	}
}

func (m *Metrics) ComplaintDeleted() {
	if m != nil {
		m.deletions.Inc()
	}
}

// Middleware counts and times requests by route pattern. On a nil receiver it
// passes requests through untouched.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)
			m.httpReqCnt.WithLabelValues(c.Request().Method, route, status).Inc()
			m.httpDur.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler serves the registry in the prometheus text format, or 404 when m is nil.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
