package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/log"
)

type fakeUseCase struct {
	out       sensor.ListReadingsOutput
	err       error
	lastInput sensor.ListReadingsInput
}

func (f *fakeUseCase) Fetch(ctx context.Context, deviceID string, limit int) sensor.FetchResult {
	return sensor.FetchResult{}
}

func (f *fakeUseCase) ListReadings(ctx context.Context, input sensor.ListReadingsInput) (sensor.ListReadingsOutput, error) {
	f.lastInput = input
	return f.out, f.err
}

func setupRouter(uc sensor.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{out: sensor.ListReadingsOutput{
		DeviceID:      "ORCH-7",
		Readings:      []sensor.Reading{{Timestamp: "2026-10-18 09:30:00", Temp: 21.5}},
		TotalReadings: 40,
		Summary:       sensor.Parse([]sensor.Reading{{Timestamp: "2026-10-18 09:30:00", Temp: 21.5}}),
	}}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7?limit=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: 1}, uc.lastInput)

	var body struct {
		DeviceID      string           `json:"device_id"`
		Readings      []map[string]any `json:"readings"`
		TotalReadings int              `json:"total_readings"`
		Summary       map[string]any   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ORCH-7", body.DeviceID)
	assert.Equal(t, 40, body.TotalReadings)
	require.Len(t, body.Readings, 1)
	assert.Equal(t, 21.5, body.Readings[0]["temp"])
	assert.Contains(t, body.Summary, "latest_reading")
}

func TestList_DefaultLimit(t *testing.T) {
	uc := &fakeUseCase{out: sensor.ListReadingsOutput{DeviceID: "ORCH-7"}}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultLimit, uc.lastInput.Limit)
	assert.JSONEq(t, `{"device_id":"ORCH-7","readings":[],"total_readings":0}`, w.Body.String())
}

func TestList_UpstreamFailure(t *testing.T) {
	r := setupRouter(&fakeUseCase{err: errors.New("502 Bad Gateway")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Failed to fetch sensor data: 502 Bad Gateway"}`, w.Body.String())
}

func TestList_InvalidLimit(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7?limit=ten", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uc.lastInput.DeviceID)
}

func TestList_LimitHonoured(t *testing.T) {
	tests := []struct {
		query     string
		wantLimit int
	}{
		{query: "?limit=0", wantLimit: 0},
		{query: "?limit=250", wantLimit: 250},
		{query: "", wantLimit: defaultLimit},
	}

	for _, tt := range tests {
		uc := &fakeUseCase{out: sensor.ListReadingsOutput{DeviceID: "ORCH-7"}}
		r := setupRouter(uc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7"+tt.query, nil))

		require.Equal(t, http.StatusOK, w.Code, tt.query)
		assert.Equal(t, tt.wantLimit, uc.lastInput.Limit, tt.query)
	}
}

func TestList_NegativeLimit(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sensor-data/ORCH-7?limit=-3", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Limit must not be negative"}`, w.Body.String())
	assert.Empty(t, uc.lastInput.DeviceID)
}
