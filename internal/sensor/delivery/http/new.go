package http

import (
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc sensor.UseCase
}

// New creates a new HTTP handler for the sensor dashboard endpoint.
func New(l log.Logger, uc sensor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
