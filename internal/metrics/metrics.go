package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	usersRegistered   prometheus.Counter
	exercisesRecorded prometheus.Counter
	failures          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_requests_latency_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		usersRegistered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tracker_users_registered_total",
				Help: "Total registered users",
			},
		),
		exercisesRecorded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tracker_exercises_recorded_total",
				Help: "Total recorded exercises",
			},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracker_request_failures_total",
				Help: "Failed tracker requests by error code",
			},
			[]string{"code"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestLatency,
		m.usersRegistered,
		m.exercisesRecorded,
		m.failures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the /metrics exposition for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestsTotal.WithLabelValues(route, method, code).Inc()
	m.requestLatency.WithLabelValues(route, method, code).Observe(elapsed.Seconds())
}

func (m *Metrics) UserRegistered() {
	m.usersRegistered.Inc()
}

func (m *Metrics) ExerciseRecorded() {
	m.exercisesRecorded.Inc()
}

func (m *Metrics) RequestFailed(code string) {
	m.failures.WithLabelValues(code).Inc()
}
