// internal/server/metrics.go
package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the server's Prometheus instruments on a private registry,
// so multiple Server instances (tests included) never collide.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dnascan_http_requests_total",
			Help: "HTTP requests served, by path and status code.",
		}, []string{"path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dnascan_http_request_duration_seconds",
			Help:    "HTTP request latency, by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
	reg.MustRegister(m.requests, m.duration)
	reg.MustRegister(collectors.NewGoCollector())
	return m
}
