package gridsphere

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
)

type readingsResp struct {
	Readings []sensor.Reading `json:"readings"`
}

// ListReadings implements repository.Repository. The API has no window parameter,
// so every reading it returns is passed through; opt.Limit trims the tail.
func (r *implRepository) ListReadings(ctx context.Context, opt repository.ListReadingsOptions) ([]sensor.Reading, error) {
	if opt.DeviceID == "" {
		return nil, sensor.ErrDeviceIDRequired
	}

	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.get(ctx, opt.DeviceID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", sensor.ErrCircuitOpen, err)
		}
		return nil, err
	}

	readings, _ := res.([]sensor.Reading)
	if opt.Limit > 0 && opt.Limit < len(readings) {
		readings = readings[:opt.Limit]
	}
	return readings, nil
}

func (r *implRepository) get(ctx context.Context, deviceID string) ([]sensor.Reading, error) {
	endpoint, err := r.endpoint(deviceID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", r.dsn("get"), err)
	}
	req.Header.Set("Accept", headerAccept)
	req.Header.Set("User-Agent", headerUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", sensor.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%s: %w", r.dsn("get"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}

	var out readingsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", sensor.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", sensor.ErrInvalidPayload, err)
	}
	return out.Readings, nil
}

func (r *implRepository) endpoint(deviceID string) (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", fmt.Errorf("%s: invalid base url: %w", r.dsn("endpoint"), err)
	}
	q := u.Query()
	q.Set("d_id", deviceID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// statusError is a non-2xx answer. It matches sensor.ErrUpstreamStatus.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: %d %s: %s", sensor.ErrUpstreamStatus, e.code, http.StatusText(e.code), e.body)
}

func (e *statusError) Unwrap() error {
	return sensor.ErrUpstreamStatus
}

// breakerSuccess reports whether err leaves the breaker counts untouched.
// Only transport errors, timeouts and 5xx are failures.
func breakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, sensor.ErrInvalidPayload) {
		return true
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code < http.StatusInternalServerError
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
