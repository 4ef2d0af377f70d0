package router

import (
	"context"

	"apple-orchard-advisor/pkg/llmprovider"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, message string) (Classification, error)
}

// SemanticRouter classifies farmer questions using LLM
type SemanticRouter struct {
	llm         llmprovider.Provider
	l           log.Logger
	metrics     *metrics.Metrics
	temperature float64
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. m may be nil; temperature is sent as given, 0 included.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm llmprovider.Provider, l log.Logger, m *metrics.Metrics, temperature float64) *SemanticRouter {
	return &SemanticRouter{
		llm:         llm,
		l:           l,
		metrics:     m,
		temperature: temperature,
	}
}
