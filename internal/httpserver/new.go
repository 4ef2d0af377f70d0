package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"apple-orchard-advisor/config"
	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/router"
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	httpConfig  config.HTTPServerConfig

	// Observability
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	// Advisory domain
	advisorUC advisor.UseCase
	sensorUC  sensor.UseCase
	router    router.Router
	llmName   string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Environment string
	HTTPServer  config.HTTPServerConfig

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	AdvisorUseCase advisor.UseCase
	SensorUseCase  sensor.UseCase
	Router         router.Router
	// LLMProvider is the name of the active provider, empty when none is configured.
	LLMProvider    string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.HTTPServer.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.HTTPServer.Port,
		mode:        cfg.HTTPServer.Mode,
		environment: cfg.Environment,
		httpConfig:  cfg.HTTPServer,
		metrics:     cfg.Metrics,
		gatherer:    cfg.Gatherer,
		advisorUC:   cfg.AdvisorUseCase,
		sensorUC:    cfg.SensorUseCase,
		router:      cfg.Router,
		llmName:     cfg.LLMProvider,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.advisorUC == nil {
		return errors.New("advisor use case is required")
	}
	if srv.sensorUC == nil {
		return errors.New("sensor use case is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
