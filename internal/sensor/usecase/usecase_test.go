package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

type fakeRepo struct {
	readings []sensor.Reading
	err      error
	calls    int
	lastOpt  repository.ListReadingsOptions
}

func (f *fakeRepo) ListReadings(ctx context.Context, opt repository.ListReadingsOptions) ([]sensor.Reading, error) {
	f.calls++
	f.lastOpt = opt
	if f.err != nil {
		return nil, f.err
	}
	out := f.readings
	if opt.Limit > 0 && opt.Limit < len(out) {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (f *fakeRepo) Source() string { return "fake" }

func readings(n int) []sensor.Reading {
	out := make([]sensor.Reading, n)
	for i := range out {
		out[i] = sensor.Reading{
			Timestamp: fmt.Sprintf("2026-10-18 09:%02d:00", 59-i),
			Temp:      float64(20 + i),
			Rainfall:  1,
		}
	}
	return out
}

func TestFetch_Ok(t *testing.T) {
	repo := &fakeRepo{readings: readings(12)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	res := uc.Fetch(context.Background(), "ORCH-7", 10)

	assert.Equal(t, sensor.StatusOk, res.Status)
	assert.Equal(t, 10, res.Count)
	assert.Equal(t, 10, repo.lastOpt.Limit)
	assert.Contains(t, res.Report, "Device: ORCH-7")
	assert.Contains(t, res.Report, "Data Quality: 10/10 readings available")
	assert.Contains(t, res.Report, "Total: 10.00 mm")
}

func TestFetch_FewerReadingsThanLimit(t *testing.T) {
	uc := New(&fakeRepo{readings: readings(3)}, log.NewNop(), nil, CacheConfig{})

	res := uc.Fetch(context.Background(), "ORCH-7", 5)

	assert.Equal(t, sensor.StatusOk, res.Status)
	assert.Contains(t, res.Report, "Data Quality: 3/5 readings available")
}

func TestFetch_DefaultLimit(t *testing.T) {
	repo := &fakeRepo{readings: readings(8)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	res := uc.Fetch(context.Background(), "ORCH-7", 0)

	assert.Equal(t, sensor.DefaultLimit, repo.lastOpt.Limit)
	assert.Equal(t, sensor.DefaultLimit, res.Count)
}

func TestFetch_Unavailable(t *testing.T) {
	tests := []struct {
		name       string
		repo       *fakeRepo
		wantReason string
	}{
		{
			name:       "no readings",
			repo:       &fakeRepo{},
			wantReason: "No sensor data available for device ORCH-7",
		},
		{
			name:       "timeout",
			repo:       &fakeRepo{err: fmt.Errorf("%w: Client.Timeout exceeded", sensor.ErrUpstreamTimeout)},
			wantReason: "Request timed out while fetching data for device ORCH-7",
		},
		{
			name:       "context deadline",
			repo:       &fakeRepo{err: context.DeadlineExceeded},
			wantReason: "Request timed out while fetching data for device ORCH-7",
		},
		{
			name:       "upstream failure",
			repo:       &fakeRepo{err: errors.New("502 Bad Gateway")},
			wantReason: "Failed to fetch sensor data: 502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(tt.repo, log.NewNop(), nil, CacheConfig{})

			res := uc.Fetch(context.Background(), "ORCH-7", 10)

			assert.Equal(t, sensor.StatusUnavailable, res.Status)
			assert.Equal(t, tt.wantReason, res.Reason)
			assert.Empty(t, res.Report)
		})
	}
}

func TestFetch_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	uc := New(&fakeRepo{readings: readings(2)}, log.NewNop(), m, CacheConfig{})
	uc.Fetch(context.Background(), "ORCH-7", 5)

	bad := New(&fakeRepo{err: errors.New("boom")}, log.NewNop(), m, CacheConfig{})
	bad.Fetch(context.Background(), "ORCH-7", 5)

	count, err := testutil.GatherAndCount(reg, "orchard_sensor_fetch_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestListReadings(t *testing.T) {
	repo := &fakeRepo{readings: readings(12)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	out, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "ORCH-7", out.DeviceID)
	assert.Len(t, out.Readings, 10)
	assert.Equal(t, 12, out.TotalReadings)
	require.NotNil(t, out.Summary)
	assert.Equal(t, 10, out.Summary.ReadingCount)
	assert.Zero(t, repo.lastOpt.Limit)
}

func TestListReadings_LimitHonoured(t *testing.T) {
	repo := &fakeRepo{readings: readings(150)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	out, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: 120})
	require.NoError(t, err)
	assert.Len(t, out.Readings, 120)
	assert.Equal(t, 150, out.TotalReadings)

	out, err = uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, out.Readings)
	assert.Nil(t, out.Summary)
	assert.Equal(t, 150, out.TotalReadings)

	_, err = uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: -1})
	assert.ErrorIs(t, err, sensor.ErrInvalidLimit)
}

func TestListReadings_Cached(t *testing.T) {
	repo := &fakeRepo{readings: readings(4)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	for i := 0; i < 3; i++ {
		_, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7", Limit: 2})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.calls)

	_, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-8", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestListReadings_ErrorNotCached(t *testing.T) {
	repo := &fakeRepo{err: errors.New("boom")}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	_, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7"})
	require.Error(t, err)
	_, err = uc.ListReadings(context.Background(), sensor.ListReadingsInput{DeviceID: "ORCH-7"})
	require.Error(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestListReadings_EmptyDeviceID(t *testing.T) {
	uc := New(&fakeRepo{}, log.NewNop(), nil, CacheConfig{})

	_, err := uc.ListReadings(context.Background(), sensor.ListReadingsInput{})
	assert.ErrorIs(t, err, sensor.ErrDeviceIDRequired)
}

func TestFetch_NeverCached(t *testing.T) {
	repo := &fakeRepo{readings: readings(4)}
	uc := New(repo, log.NewNop(), nil, CacheConfig{})

	uc.Fetch(context.Background(), "ORCH-7", 5)
	uc.Fetch(context.Background(), "ORCH-7", 5)

	assert.Equal(t, 2, repo.calls)
}
