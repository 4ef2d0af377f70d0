package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/pkg/metrics"
)

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	assert.Error(t, err, "registering the same collectors twice must fail")
}

func TestObserveClassification_SeparatesFallback(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.ObserveClassification("general_advisor", false)
	m.ObserveClassification("general_advisor", true)
	m.ObserveClassification("general_advisor", true)
	m.ObserveSensorFetch("gridsphere", "ok")
	m.ObserveLLMRequest("deepseek", "success")
	m.ObserveChat("general_advisor", 1500*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "orchard_router_classifications_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "fallback and genuine decisions must be distinct series")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveClassification("off_topic", false)
		m.ObserveSensorFetch("influx", "unavailable")
		m.ObserveLLMRequest("openai", "failure")
		m.ObserveChat("off_topic", time.Second)
		m.ObserveHTTPRequest("GET", "/health", 200)
	})
}

func TestObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.ObserveHTTPRequest("POST", "/api/chat", 200)
	m.ObserveHTTPRequest("POST", "/api/chat", 200)
	m.ObserveHTTPRequest("POST", "/api/chat", 429)

	count, err := testutil.GatherAndCount(reg, "orchard_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
