package usecase

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/router"
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/llmprovider"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

const tracerName = "apple-orchard-advisor/internal/advisor"

// Config tunes the advisor LLM call. Values are sent as given; defaults live in config.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// implUseCase is the private implementation of advisor.UseCase.
type implUseCase struct {
	router  router.Router
	fetcher sensor.Fetcher
	llm     llmprovider.Provider
	l       log.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	cfg     Config
}

var _ advisor.UseCase = (*implUseCase)(nil)

// New creates a new advisor UseCase implementation. m may be nil.
func New(r router.Router, fetcher sensor.Fetcher, llm llmprovider.Provider, l log.Logger, m *metrics.Metrics, cfg Config) *implUseCase {
	return &implUseCase{
		router:  r,
		fetcher: fetcher,
		llm:     llm,
		l:       l,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
		cfg:     cfg,
	}
}
