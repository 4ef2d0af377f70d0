package influx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFlux(t *testing.T) {
	q := buildFlux("telemetry", "orchard_sensor", `ORCH"7`, 10)

	assert.Contains(t, q, `from(bucket: "telemetry")`)
	assert.Contains(t, q, `r._measurement == "orchard_sensor"`)
	assert.Contains(t, q, `r.device_id == "ORCH\"7"`)
	assert.Contains(t, q, `pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")`)
	assert.Contains(t, q, `sort(columns: ["_time"], desc: true)`)
	assert.Contains(t, q, `limit(n: 10)`)
}

func TestReadingFromValues(t *testing.T) {
	ts := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	r := readingFromValues(ts, map[string]interface{}{
		"temp":        21.5,
		"humidity":    int64(64),
		"rainfall":    "0.4",
		"wind_speed":  uint64(2),
		"leafwetness": 3.0,
		"device_id":   "ORCH-7",
	})

	assert.Equal(t, "2026-10-18 09:30:00", r.Timestamp)
	assert.Equal(t, 21.5, r.Temp)
	assert.Equal(t, 64.0, r.Humidity)
	assert.Equal(t, 0.4, r.Rainfall)
	assert.Equal(t, 2.0, r.WindSpeed)
	assert.Zero(t, r.Pressure)
	require.NotNil(t, r.LeafWetness)
	assert.Equal(t, 3.0, *r.LeafWetness)
}

func TestReadingFromValues_NoLeafWetness(t *testing.T) {
	r := readingFromValues(time.Now(), map[string]interface{}{"temp": 20.0, "leafwetness": nil})
	assert.Nil(t, r.LeafWetness)
}
