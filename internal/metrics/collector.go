package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records service metrics on its own registry so several
// collectors can coexist in one process (tests, two servers).
type Collector struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	forecastsServed     prometheus.Counter
	modelFitDuration    prometheus.Histogram
	recommendations     *prometheus.HistogramVec
	mlRequests          *prometheus.CounterVec
	mlLatency           *prometheus.HistogramVec
}

// NewCollector creates a collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		forecastsServed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forecasts_served_total",
				Help:      "Total number of forecasts produced",
			},
		),
		modelFitDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "model_fit_duration_seconds",
				Help:      "Time spent fitting and predicting the balance model",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		recommendations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recommended_quests",
				Help:      "Number of quests returned per recommendation request",
				Buckets:   []float64{0, 1, 2, 3},
			},
			[]string{"gem"},
		),
		mlRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ml_requests_total",
				Help:      "Total number of calls to the ML service",
			},
			[]string{"endpoint", "outcome"},
		),
		mlLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ml_latency_seconds",
				Help:      "ML service call latency in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"endpoint"},
		),
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveHTTPRequest records one finished request. All Observe methods are
// no-ops on a nil Collector.
func (c *Collector) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) ObserveForecast(fitDuration time.Duration) {
	if c == nil {
		return
	}
	c.forecastsServed.Inc()
	c.modelFitDuration.Observe(fitDuration.Seconds())
}

func (c *Collector) ObserveRecommendations(gem string, count int) {
	if c == nil {
		return
	}
	c.recommendations.WithLabelValues(gem).Observe(float64(count))
}

func (c *Collector) ObserveMLCall(endpoint string, err error, duration time.Duration) {
	if c == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.mlRequests.WithLabelValues(endpoint, outcome).Inc()
	c.mlLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}
