package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
)

// Fetch builds the sensor report for the newest limit readings of deviceID.
// Failures are folded into an Unavailable result carrying a human readable reason.
func (uc *implUseCase) Fetch(ctx context.Context, deviceID string, limit int) sensor.FetchResult {
	if limit <= 0 {
		limit = sensor.DefaultLimit
	}

	ctx, span := uc.tracer.Start(ctx, "sensor.Fetch", trace.WithAttributes(
		attribute.String("sensor.device_id", deviceID),
		attribute.Int("sensor.limit", limit),
		attribute.String("sensor.source", uc.repo.Source()),
	))
	defer span.End()

	readings, err := uc.repo.ListReadings(ctx, repository.ListReadingsOptions{DeviceID: deviceID, Limit: limit})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.l.Warnf(ctx, "%s: device %s: %v", sensor.LogPrefixFetch, deviceID, err)
		return uc.unavailable(reasonFor(deviceID, err))
	}
	if len(readings) == 0 {
		uc.l.Infof(ctx, "%s: device %s returned no readings", sensor.LogPrefixFetch, deviceID)
		return uc.unavailable(fmt.Sprintf(sensor.ReasonNoData, deviceID))
	}

	summary := sensor.Summarize(readings, limit)
	span.SetAttributes(attribute.Int("sensor.readings", summary.Count))
	uc.metrics.ObserveSensorFetch(uc.repo.Source(), sensor.StatusOk.String())
	uc.l.Debugf(ctx, "%s: device %s: %d/%d readings", sensor.LogPrefixFetch, deviceID, summary.Count, limit)

	return sensor.Ok(sensor.RenderReport(deviceID, summary), summary.Count)
}

func (uc *implUseCase) unavailable(reason string) sensor.FetchResult {
	uc.metrics.ObserveSensorFetch(uc.repo.Source(), sensor.StatusUnavailable.String())
	return sensor.Unavailable(reason)
}

func reasonFor(deviceID string, err error) string {
	if errors.Is(err, sensor.ErrUpstreamTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf(sensor.ReasonTimeout, deviceID)
	}
	return fmt.Sprintf(sensor.ReasonFetchFailed, err.Error())
}
