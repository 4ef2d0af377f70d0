package http

import (
	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc advisor.UseCase
}

// New creates a new HTTP handler for the advisory chat endpoint.
func New(l log.Logger, uc advisor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
