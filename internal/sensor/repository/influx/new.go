package influx

import (
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"apple-orchard-advisor/internal/sensor/repository"
	"apple-orchard-advisor/pkg/log"
)

// Source is the backend name reported in logs and metrics.
const Source = "influx"

// Defaults
const (
	DefaultMeasurement = "orchard_sensor"
	DefaultRange       = "-30d"
	DefaultMaxReadings = 100
	DeviceTag          = "device_id"
)

// Config configures the InfluxDB repository.
type Config struct {
	Org         string
	Bucket      string
	Measurement string
}

type implRepository struct {
	query       api.QueryAPI
	bucket      string
	measurement string
	l           log.Logger
}

// New creates an InfluxDB 2.x backed Repository reading from client.
func New(client influxdb2.Client, cfg Config, l log.Logger) repository.Repository {
	if client == nil {
		panic("sensor/repository/influx: client is required")
	}
	if cfg.Measurement == "" {
		cfg.Measurement = DefaultMeasurement
	}
	return &implRepository{
		query:       client.QueryAPI(cfg.Org),
		bucket:      cfg.Bucket,
		measurement: cfg.Measurement,
		l:           l,
	}
}

func (r *implRepository) Source() string {
	return Source
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("sensor/repository/influx.%s", method)
}
