package usecase

import (
	"context"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
)

// ListReadings returns the newest input.Limit raw readings plus a structured summary of them.
// The limit is honoured as given: 0 yields no readings and there is no upper bound.
// Full series are cached per device for a short TTL.
func (uc *implUseCase) ListReadings(ctx context.Context, input sensor.ListReadingsInput) (sensor.ListReadingsOutput, error) {
	if input.DeviceID == "" {
		return sensor.ListReadingsOutput{}, sensor.ErrDeviceIDRequired
	}
	if input.Limit < 0 {
		return sensor.ListReadingsOutput{}, sensor.ErrInvalidLimit
	}

	readings, ok := uc.cache.Get(input.DeviceID)
	if !ok {
		var err error
		readings, err = uc.repo.ListReadings(ctx, repository.ListReadingsOptions{DeviceID: input.DeviceID})
		if err != nil {
			uc.l.Errorf(ctx, "%s: device %s: %v", sensor.LogPrefixListReadings, input.DeviceID, err)
			uc.metrics.ObserveSensorFetch(uc.repo.Source(), sensor.StatusUnavailable.String())
			return sensor.ListReadingsOutput{}, err
		}
		uc.metrics.ObserveSensorFetch(uc.repo.Source(), sensor.StatusOk.String())
		uc.cache.Add(input.DeviceID, readings)
	}

	window := readings
	if input.Limit < len(window) {
		window = window[:input.Limit]
	}

	return sensor.ListReadingsOutput{
		DeviceID:      input.DeviceID,
		Readings:      window,
		TotalReadings: len(readings),
		Summary:       sensor.Parse(window),
	}, nil
}
