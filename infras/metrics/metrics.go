package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shareit"

// Metrics owns a private registry so that tests can build as many instances as they need.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	bookingStatus   *prometheus.CounterVec
	bookingRejected *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
		bookingStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "status_total",
			Help:      "Bookings entering a status.",
		}, []string{"status"}),
		bookingRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "refused_total",
			Help:      "Booking operations refused by a business rule, by operation and failure kind.",
		}, []string{"operation", "kind"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by key prefix and result.",
		}, []string{"prefix", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.bookingStatus,
		m.bookingRejected,
		m.cacheLookups,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingStatus(status string) {
	m.bookingStatus.WithLabelValues(status).Inc()
}

func (m *Metrics) BookingRefused(operation, kind string) {
	m.bookingRejected.WithLabelValues(operation, kind).Inc()
}

func (m *Metrics) CacheLookup(prefix string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	m.cacheLookups.WithLabelValues(prefix, result).Inc()
}

// Registry exposes the underlying registry for assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
