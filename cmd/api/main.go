package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"apple-orchard-advisor/config"
	_ "apple-orchard-advisor/docs" // Swagger docs
	"apple-orchard-advisor/internal/app"
	"apple-orchard-advisor/internal/httpserver"
	"apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/metrics"
)

// @title       Apple Orchard Advisor API
// @description Multi-advisor assistant for apple growers, grounded in live orchard sensor data.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Apple Orchard Advisor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(registry)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		return
	}

	// 4. Advisory core
	core, err := app.New(ctx, cfg, logger, m)
	if err != nil {
		logger.Error(ctx, "Failed to initialize advisory core: ", err)
		return
	}
	defer core.Close()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Environment:    cfg.Environment.Name,
		HTTPServer:     cfg.HTTPServer,
		Metrics:        m,
		Gatherer:       registry,
		AdvisorUseCase: core.Advisor,
		SensorUseCase:  core.Sensor,
		Router:         core.Router,
		LLMProvider:    core.LLM.Name(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
