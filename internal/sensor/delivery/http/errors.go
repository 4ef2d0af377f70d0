package http

import (
	"errors"
	"fmt"
	"net/http"

	"apple-orchard-advisor/internal/sensor"
	pkgErrors "apple-orchard-advisor/pkg/errors"
)

var (
	errDeviceIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Device ID is required")
	errInvalidLimit     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Limit must not be negative")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything coming back from the telemetry source is an upstream failure.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, sensor.ErrDeviceIDRequired):
		return errDeviceIDRequired
	case errors.Is(err, sensor.ErrInvalidLimit):
		return errInvalidLimit
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch sensor data: %s", err.Error()))
	}
}
