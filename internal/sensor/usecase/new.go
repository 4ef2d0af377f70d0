package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

const tracerName = "apple-orchard-advisor/internal/sensor"

// Dashboard cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Second
)

// CacheConfig sizes the raw readings cache used by ListReadings. Fetch is never cached.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// implUseCase is the private implementation of sensor.UseCase.
type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	cache   *expirable.LRU[string, []sensor.Reading]
}

var _ sensor.UseCase = (*implUseCase)(nil)

// New creates a new sensor UseCase implementation. m may be nil.
func New(repo repository.Repository, l log.Logger, m *metrics.Metrics, cacheCfg CacheConfig) *implUseCase {
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = DefaultCacheSize
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = DefaultCacheTTL
	}
	return &implUseCase{
		repo:    repo,
		l:       l,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
		cache:   expirable.NewLRU[string, []sensor.Reading](cacheCfg.Size, nil, cacheCfg.TTL),
	}
}
