package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/config"
	"apple-orchard-advisor/internal/app"
	"apple-orchard-advisor/internal/httpserver"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

func TestNew_WithoutProviderReportsMissing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("DEEPSEEK_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	a, err := app.New(context.Background(), cfg, log.NewNop(), m)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	assert.Empty(t, a.LLM.Name())

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Environment:    cfg.Environment.Name,
		HTTPServer:     config.HTTPServerConfig{Port: 8000, Mode: gin.TestMode},
		Metrics:        m,
		Gatherer:       reg,
		AdvisorUseCase: a.Advisor,
		SensorUseCase:  a.Sensor,
		Router:         a.Router,
		LLMProvider:    a.LLM.Name(),
	})
	require.NoError(t, err)

	health := httptest.NewRecorder()
	srv.Handler().ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"llm_api":"missing"`)

	ready := httptest.NewRecorder()
	srv.Handler().ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, ready.Code)

	chat := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"device_id":"ORCH-7","message":"Should I irrigate today?"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(chat, req)
	assert.Equal(t, http.StatusInternalServerError, chat.Code)
}
