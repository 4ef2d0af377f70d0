package http

import (
	"errors"
	"fmt"
	"net/http"

	"apple-orchard-advisor/internal/advisor"
	pkgErrors "apple-orchard-advisor/pkg/errors"
)

var (
	errDeviceIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Device ID is required")
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Everything that is not a validation error is reported as an agent failure.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, advisor.ErrDeviceIDRequired):
		return errDeviceIDRequired
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Agent error: %s", err.Error()))
	}
}

func asHTTPError(err error) *pkgErrors.HTTPError {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
