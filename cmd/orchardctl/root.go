package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"apple-orchard-advisor/config"
	"apple-orchard-advisor/internal/advisor"
	"apple-orchard-advisor/internal/app"
	"apple-orchard-advisor/internal/sensor"
	"apple-orchard-advisor/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "orchardctl",
	Short: "orchardctl - talk to the apple orchard advisor from a terminal",
	Long: `orchardctl runs the same router, advisors and sensor source as the API server,
reading config.yaml and .env from the working directory.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// core is the part of the advisory stack the commands need.
type core struct {
	advisor advisor.UseCase
	sensor  sensor.UseCase
	close   func()
}

// buildCore wires the stack from configuration. Tests replace it.
var buildCore = func(ctx context.Context) (*core, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.New(ctx, cfg, logger, nil)
	if err != nil {
		return nil, err
	}
	return &core{advisor: a.Advisor, sensor: a.Sensor, close: a.Close}, nil
}
