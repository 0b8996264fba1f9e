package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const chartRenderPrefix = "chart.render."

type PrometheusMetrics struct {
	chartRequests         *prometheus.CounterVec
	chartDuration         *prometheus.HistogramVec
	cacheWriteFailures    *prometheus.CounterVec
	dashboardRequests     *prometheus.CounterVec
	dashboardDuration     prometheus.Histogram
	circuitBreakerState   *prometheus.GaugeVec
	circuitBreakerRejects *prometheus.CounterVec
}

// NewPrometheusMetrics registers the chart collectors with reg; nil means the default registerer
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		chartRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_requests_total",
				Help: "Total number of chart requests by chart type and outcome (hit, miss, rejected, failed)",
			},
			[]string{"chart_type", "status"},
		),
		chartDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chart_render_duration_milliseconds",
				Help:    "Duration of chart computations that missed the cache in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"chart_type"},
		),
		cacheWriteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_cache_write_failures_total",
				Help: "Total number of chart payloads that could not be written to the cache",
			},
			[]string{"chart_type"},
		),
		dashboardRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_summary_requests_total",
				Help: "Total number of dashboard summary requests by outcome",
			},
			[]string{"status"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_summary_duration_milliseconds",
				Help:    "Dashboard summary computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		circuitBreakerRejects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_rejections_total",
				Help: "Total number of requests rejected by an open circuit breaker",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "chart.request":
		m.chartRequests.WithLabelValues(tags["chart_type"], tags["status"]).Inc()
	case "chart.cache.write_failed":
		m.cacheWriteFailures.WithLabelValues(tags["chart_type"]).Inc()
	case "dashboard.summary":
		m.dashboardRequests.WithLabelValues(tags["status"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
		m.circuitBreakerRejects.WithLabelValues(tags["service"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch {
	case strings.HasPrefix(name, chartRenderPrefix):
		m.chartDuration.WithLabelValues(strings.TrimPrefix(name, chartRenderPrefix)).Observe(float64(duration.Milliseconds()))
	case name == "dashboard.summary":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
