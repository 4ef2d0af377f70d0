package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/config"
	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/router"
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

type stubAdvisor struct{ calls int }

func (s *stubAdvisor) Chat(ctx context.Context, input advisor.ChatInput) (advisor.ChatOutput, error) {
	s.calls++
	return advisor.ChatOutput{Response: "ok", Advisor: advisor.LabelGeneralAdvisor}, nil
}

type stubSensor struct{}

func (stubSensor) Fetch(ctx context.Context, deviceID string, limit int) sensor.FetchResult {
	return sensor.Unavailable("stub")
}

func (stubSensor) ListReadings(ctx context.Context, input sensor.ListReadingsInput) (sensor.ListReadingsOutput, error) {
	return sensor.ListReadingsOutput{DeviceID: input.DeviceID, Readings: []sensor.Reading{}}, nil
}

type stubRouter struct{}

func (stubRouter) Classify(ctx context.Context, message string) (router.Classification, error) {
	return router.Classification{Label: advisor.LabelOffTopic, Raw: "off_topic"}, nil
}

func newServer(t *testing.T, env, llm string, uc *stubAdvisor) *HTTPServer {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Environment:    env,
		HTTPServer:     config.HTTPServerConfig{Port: 8000, Mode: gin.TestMode},
		Metrics:        m,
		Gatherer:       reg,
		AdvisorUseCase: uc,
		SensorUseCase:  stubSensor{},
		Router:         stubRouter{},
		LLMProvider:    llm,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{HTTPServer: config.HTTPServerConfig{Port: 8000, Mode: gin.TestMode}})
	assert.Error(t, err)

	_, err = New(nil, Config{})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, "development", "deepseek", &stubAdvisor{})

	root := serve(srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, root.Code)
	assert.Contains(t, root.Body.String(), "Hello, UpTimeRobot!")
	assert.Contains(t, root.Header().Get("Content-Type"), "text/html")

	health := serve(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"status":"healthy"`)
	assert.Contains(t, health.Body.String(), `"api_connection":"active"`)
	assert.Contains(t, health.Body.String(), `"llm_api":"configured"`)

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/live", "").Code)

	m := serve(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), "orchard_http_requests_total")
}

func TestHealth_MissingProvider(t *testing.T) {
	srv := newServer(t, "development", "", &stubAdvisor{})

	health := serve(srv, http.MethodGet, "/health", "")
	assert.Contains(t, health.Body.String(), `"llm_api":"missing"`)
	assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodGet, "/ready", "").Code)
}

func TestChatRoutes(t *testing.T) {
	uc := &stubAdvisor{}
	srv := newServer(t, "development", "deepseek", uc)

	for _, path := range []string{"/api/chat", "/chat"} {
		w := serve(srv, http.MethodPost, path, `{"device_id":"ORCH-7","message":"hi"}`)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
	assert.Equal(t, 2, uc.calls)

	w := serve(srv, http.MethodPost, "/api/chat", `{"device_id":"","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 2, uc.calls)
}

func TestSensorRoute(t *testing.T) {
	srv := newServer(t, "development", "deepseek", &stubAdvisor{})

	w := serve(srv, http.MethodGet, "/api/sensor-data/ORCH-7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"device_id":"ORCH-7"`)
}

func TestTestRoutes_OnlyOutsideProduction(t *testing.T) {
	dev := newServer(t, "development", "deepseek", &stubAdvisor{})
	w := serve(dev, http.MethodPost, "/test/classify", `{"message":"What is a computer?"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"advisor":"off_topic"`)

	prod := newServer(t, "production", "deepseek", &stubAdvisor{})
	w = serve(prod, http.MethodPost, "/test/classify", `{"message":"What is a computer?"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t, "development", "deepseek", &stubAdvisor{})
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
