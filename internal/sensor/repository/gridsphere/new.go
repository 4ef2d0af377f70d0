package gridsphere

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"apple-orchard-advisor/internal/sensor/repository"
	"apple-orchard-advisor/pkg/log"
)

// Source is the backend name reported in logs and metrics.
const Source = "gridsphere"

// Defaults match the public GridSphere device API.
const (
	DefaultBaseURL          = "https://gridsphere.in/dapi/"
	DefaultTimeout          = 10 * time.Second
	DefaultFailureThreshold = 5

	headerAccept    = "application/json, text/plain, */*"
	headerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
)

// Config configures the GridSphere repository.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Circuit breaker. Zero values take gobreaker defaults, except FailureThreshold.
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32
}

type implRepository struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
	l       log.Logger
}

// New creates a GridSphere backed Repository.
func New(cfg Config, l log.Logger) repository.Repository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = DefaultFailureThreshold
	}

	r := &implRepository{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		l:       l,
	}
	r.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         Source,
		MaxRequests:  cfg.BreakerMaxRequests,
		Interval:     cfg.BreakerInterval,
		Timeout:      cfg.BreakerTimeout,
		IsSuccessful: breakerSuccess,
		ReadyToTrip:  func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "%s: circuit breaker %s: %s -> %s", r.dsn("breaker"), name, from, to)
		},
	})
	return r
}

func (r *implRepository) Source() string {
	return Source
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("sensor/repository/gridsphere.%s", method)
}
