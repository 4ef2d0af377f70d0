package sensor

import "errors"

var (
	ErrDeviceIDRequired = errors.New("device id is required")
	ErrInvalidLimit     = errors.New("limit must not be negative")
	ErrUpstreamTimeout  = errors.New("telemetry request timed out")
	ErrUpstreamStatus   = errors.New("unexpected telemetry status")
	ErrInvalidPayload   = errors.New("invalid telemetry payload")
	ErrCircuitOpen      = errors.New("telemetry circuit breaker is open")
)
