// Package app assembles the advisory core from configuration. The API server
// and the CLI share it so both run the same router, advisors and sensor source.
package app

import (
	"context"
	"errors"
	"fmt"

	"apple-orchard-advisor/config"
	influxConn "apple-orchard-advisor/config/influx"
	"apple-orchard-advisor/internal/advisor"
	advisorUC "apple-orchard-advisor/internal/advisor/usecase"
	"apple-orchard-advisor/internal/router"
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/internal/sensor/repository"
	"apple-orchard-advisor/internal/sensor/repository/gridsphere"
	influxRepo "apple-orchard-advisor/internal/sensor/repository/influx"
	sensorUC "apple-orchard-advisor/internal/sensor/usecase"
	"apple-orchard-advisor/pkg/llmprovider"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

// App holds the wired core.
type App struct {
	Router  router.Router
	Advisor advisor.UseCase
	Sensor  sensor.UseCase
	LLM     *llmprovider.Manager

	closers []func()
}

// New builds the core. A missing language model provider is not fatal: the
// service starts, reports it on /health, and chat turns fail until it is configured.
func New(ctx context.Context, cfg *config.Config, l log.Logger, m *metrics.Metrics) (*App, error) {
	a := &App{}

	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			return nil, fmt.Errorf("internal.app.New: %w", err)
		}
		l.Warnf(ctx, "internal.app.New: no language model provider configured, chat is disabled")
	}
	a.LLM = llmprovider.NewManager(provider, &llmprovider.Config{
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, l, m)
	if a.LLM.Name() != "" {
		l.Infof(ctx, "LLM provider: %s (%s)", a.LLM.Name(), a.LLM.Model())
	}

	repo, err := a.sensorRepository(ctx, cfg.Sensor, l)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Sensor source: %s", repo.Source())

	sensorUseCase := sensorUC.New(repo, l, m, sensorUC.CacheConfig{
		Size: cfg.Sensor.CacheSize,
		TTL:  cfg.Sensor.CacheTTL,
	})
	a.Sensor = sensorUseCase
	a.Router = router.New(a.LLM, l, m, cfg.Advisor.RouterTemperature)
	a.Advisor = advisorUC.New(a.Router, sensorUseCase, a.LLM, l, m, advisorUC.Config{
		Temperature: cfg.Advisor.AdvisorTemperature,
		MaxTokens:   cfg.Advisor.MaxTokens,
	})

	return a, nil
}

func (a *App) sensorRepository(ctx context.Context, cfg config.SensorConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Source {
	case config.SensorSourceInflux:
		client, err := influxConn.Connect(ctx, cfg.Influx)
		if err != nil {
			return nil, fmt.Errorf("internal.app.sensorRepository: %w", err)
		}
		a.closers = append(a.closers, func() { influxConn.Disconnect(client) })
		return influxRepo.New(client, influxRepo.Config{
			Org:         cfg.Influx.Org,
			Bucket:      cfg.Influx.Bucket,
			Measurement: cfg.Influx.Measurement,
		}, l), nil
	default:
		return gridsphere.New(gridsphere.Config{
			BaseURL:                 cfg.BaseURL,
			Timeout:                 cfg.Timeout,
			BreakerMaxRequests:      cfg.Breaker.MaxRequests,
			BreakerInterval:         cfg.Breaker.Interval,
			BreakerTimeout:          cfg.Breaker.Timeout,
			BreakerFailureThreshold: cfg.Breaker.FailureThreshold,
		}, l), nil
	}
}

// Close releases external clients.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
