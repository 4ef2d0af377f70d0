package repository

import (
	"context"

	"apple-orchard-advisor/internal/sensor"
)

// Repository is a source of telemetry readings for one device.
type Repository interface {
	// ListReadings returns readings newest first. An unknown device yields an empty slice, not an error.
	ListReadings(ctx context.Context, opt ListReadingsOptions) ([]sensor.Reading, error)
	// Source names the backend in logs and metrics.
	Source() string
}
