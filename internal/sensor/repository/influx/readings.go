package influx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
)

var fluxEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// buildFlux pivots one row per timestamp so each record carries every field of a reading.
func buildFlux(bucket, measurement, deviceID string, limit int) string {
	return fmt.Sprintf(`from(bucket: "%s")
  |> range(start: %s)
  |> filter(fn: (r) => r._measurement == "%s" and r.%s == "%s")
  |> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
  |> group()
  |> sort(columns: ["_time"], desc: true)
  |> limit(n: %d)
`, fluxEscaper.Replace(bucket), DefaultRange, fluxEscaper.Replace(measurement), DeviceTag, fluxEscaper.Replace(deviceID), limit)
}

// ListReadings implements repository.Repository.
func (r *implRepository) ListReadings(ctx context.Context, opt repository.ListReadingsOptions) ([]sensor.Reading, error) {
	if opt.DeviceID == "" {
		return nil, sensor.ErrDeviceIDRequired
	}
	limit := opt.Limit
	if limit <= 0 || limit > DefaultMaxReadings {
		limit = DefaultMaxReadings
	}

	res, err := r.query.Query(ctx, buildFlux(r.bucket, r.measurement, opt.DeviceID, limit))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %v", sensor.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%s: query: %w", r.dsn("ListReadings"), err)
	}
	defer res.Close()

	readings := make([]sensor.Reading, 0, limit)
	for res.Next() {
		rec := res.Record()
		readings = append(readings, readingFromValues(rec.Time(), rec.Values()))
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate: %w", r.dsn("ListReadings"), err)
	}
	return readings, nil
}

// readingFromValues maps a pivoted record onto a Reading. Field names match the telemetry JSON keys.
func readingFromValues(ts time.Time, values map[string]interface{}) sensor.Reading {
	reading := sensor.Reading{
		Timestamp:       ts.UTC().Format(time.DateTime),
		Temp:            toFloat(values["temp"]),
		Humidity:        toFloat(values["humidity"]),
		SurfaceTemp:     toFloat(values["surface_temp"]),
		SurfaceHumidity: toFloat(values["surface_humidity"]),
		DepthTemp:       toFloat(values["depth_temp"]),
		DepthHumidity:   toFloat(values["depth_humidity"]),
		LightIntensity:  toFloat(values["light_intensity"]),
		Pressure:        toFloat(values["pressure"]),
		Rainfall:        toFloat(values["rainfall"]),
		WindSpeed:       toFloat(values["wind_speed"]),
		WindDirection:   toFloat(values["wind_direction"]),
	}
	if v, ok := values["leafwetness"]; ok && v != nil {
		lw := toFloat(v)
		reading.LeafWetness = &lw
	}
	return reading
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}
