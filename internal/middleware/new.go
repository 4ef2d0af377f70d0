package middleware

import (
	"apple-orchard-advisor/config"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

type Middleware struct {
	l           log.Logger
	metrics     *metrics.Metrics
	corsOrigins []string
	limiter     *rateLimiter
}

func New(l log.Logger, m *metrics.Metrics, cfg config.HTTPServerConfig) Middleware {
	return Middleware{
		l:           l,
		metrics:     m,
		corsOrigins: cfg.CORSOrigins,
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
	}
}
