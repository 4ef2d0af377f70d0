package influx

import (
	"context"
	"errors"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"apple-orchard-advisor/config"
)

// Connect opens an InfluxDB 2.x client and pings it once.
func Connect(ctx context.Context, cfg config.InfluxConfig) (influxdb2.Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("influx url is required")
	}

	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	ok, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("config.influx.Connect: ping %s: %w", cfg.URL, err)
	}
	if !ok {
		client.Close()
		return nil, fmt.Errorf("config.influx.Connect: %s is not ready", cfg.URL)
	}
	return client, nil
}

// Disconnect releases the client's idle connections.
func Disconnect(client influxdb2.Client) {
	if client != nil {
		client.Close()
	}
}
