package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orchard"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	classifications *prometheus.CounterVec
	sensorFetches   *prometheus.CounterVec
	llmRequests     *prometheus.CounterVec
	chatDuration    *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "router_classifications_total",
			Help:      "Questions classified by the router, by advisor and whether the default label was substituted.",
		}, []string{"advisor", "fallback"}),
		sensorFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sensor_fetch_total",
			Help:      "Sensor fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "Language model calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		chatDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_request_duration_seconds",
			Help:      "End to end advisory turn latency by advisor.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"advisor"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}

	for _, c := range []prometheus.Collector{m.classifications, m.sensorFetches, m.llmRequests, m.chatDuration, m.httpRequests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveClassification counts one router decision.
func (m *Metrics) ObserveClassification(advisor string, fallback bool) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(advisor, strconv.FormatBool(fallback)).Inc()
}

// ObserveSensorFetch counts one sensor fetch. outcome is "ok" or "unavailable".
func (m *Metrics) ObserveSensorFetch(source, outcome string) {
	if m == nil {
		return
	}
	m.sensorFetches.WithLabelValues(source, outcome).Inc()
}

// ObserveLLMRequest counts one provider call. outcome is "success", "empty" or "failure".
func (m *Metrics) ObserveLLMRequest(provider, outcome string) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(provider, outcome).Inc()
}

// ObserveChat records the latency of a completed advisory turn.
func (m *Metrics) ObserveChat(advisor string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.chatDuration.WithLabelValues(advisor).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest counts one served request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
