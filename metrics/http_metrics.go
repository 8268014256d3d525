package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetricsCollector struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

var globalCollector *HTTPMetricsCollector

func getCollector() *HTTPMetricsCollector {
	if globalCollector == nil {
		globalCollector = &HTTPMetricsCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "storeapi_http_requests_total",
					Help: "The total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			Latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "storeapi_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "path"},
			),
			InFlight: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "storeapi_http_requests_in_flight",
					Help: "The number of HTTP requests currently being served",
				},
			),
		}
	}
	return globalCollector
}

// HTTPMetrics records request-level metrics for the API server
type HTTPMetrics struct {
	collector *HTTPMetricsCollector
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		collector: getCollector(),
	}
}

func (m *HTTPMetrics) RecordRequest(method, path, status string, durationSeconds float64) {
	m.collector.Requests.WithLabelValues(method, path, status).Inc()
	m.collector.Latency.WithLabelValues(method, path).Observe(durationSeconds)
}

func (m *HTTPMetrics) RequestStarted() {
	m.collector.InFlight.Inc()
}

func (m *HTTPMetrics) RequestFinished() {
	m.collector.InFlight.Dec()
}
