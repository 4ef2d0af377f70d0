package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Orchard specifics
	Sensor  SensorConfig
	Advisor AdvisorConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	CORSOrigins     []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SensorConfig selects and configures the telemetry source.
type SensorConfig struct {
	Source    string // "gridsphere" or "influx"
	BaseURL   string
	Timeout   time.Duration
	Breaker   BreakerConfig
	CacheTTL  time.Duration
	CacheSize int
	Influx    InfluxConfig
}

// BreakerConfig tunes the circuit breaker around the telemetry HTTP API.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type InfluxConfig struct {
	URL         string
	Token       string
	Org         string
	Bucket      string
	Measurement string
}

// AdvisorConfig holds sampling settings for the router and advisor calls.
type AdvisorConfig struct {
	RouterTemperature  float64
	AdvisorTemperature float64
	MaxTokens          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // empty or "0" leaves calls unbounded
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Sampling defaults. An explicit 0 in config.yaml or the environment is kept.
const (
	DefaultRouterTemperature  = 0.1
	DefaultAdvisorTemperature = 0.7
)

// Sensor sources
const (
	SensorSourceGridSphere = "gridsphere"
	SensorSourceInflux     = "influx"
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the process environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.CORSOrigins = splitList(viper.GetString("http_server.cors_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sensor
	cfg.Sensor.Source = viper.GetString("sensor.source")
	cfg.Sensor.BaseURL = viper.GetString("sensor.base_url")
	if baseURL := viper.GetString("sensor_api_url"); baseURL != "" {
		cfg.Sensor.BaseURL = baseURL
	}
	cfg.Sensor.Timeout = viper.GetDuration("sensor.timeout")
	cfg.Sensor.Breaker.MaxRequests = viper.GetUint32("sensor.breaker.max_requests")
	cfg.Sensor.Breaker.Interval = viper.GetDuration("sensor.breaker.interval")
	cfg.Sensor.Breaker.Timeout = viper.GetDuration("sensor.breaker.timeout")
	cfg.Sensor.Breaker.FailureThreshold = viper.GetUint32("sensor.breaker.failure_threshold")
	cfg.Sensor.CacheTTL = viper.GetDuration("sensor.cache_ttl")
	cfg.Sensor.CacheSize = viper.GetInt("sensor.cache_size")
	cfg.Sensor.Influx.URL = viper.GetString("sensor.influx.url")
	cfg.Sensor.Influx.Token = expandEnvVar(viper.GetString("sensor.influx.token"))
	cfg.Sensor.Influx.Org = viper.GetString("sensor.influx.org")
	cfg.Sensor.Influx.Bucket = viper.GetString("sensor.influx.bucket")
	cfg.Sensor.Influx.Measurement = viper.GetString("sensor.influx.measurement")
	if influxToken := viper.GetString("influx_token"); influxToken != "" {
		cfg.Sensor.Influx.Token = influxToken
	}

	// Advisor
	cfg.Advisor.RouterTemperature = viper.GetFloat64("advisor.router_temperature")
	cfg.Advisor.AdvisorTemperature = viper.GetFloat64("advisor.advisor_temperature")
	cfg.Advisor.MaxTokens = viper.GetInt("advisor.max_tokens")

	// LLM Provider Abstraction
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, providerFromMap(providerMap))
				}
			}
		}
	}

	// The original service only needed DEEPSEEK_API_KEY; honour that without a config file.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("deepseek_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "deepseek",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    "deepseek-chat",
				Timeout:  "60s",
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}
	if err := validateSensorConfig(&cfg.Sensor); err != nil {
		return nil, fmt.Errorf("invalid sensor config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 0)
	viper.SetDefault("http_server.cors_origins", "*")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Sensor defaults
	viper.SetDefault("sensor.source", SensorSourceGridSphere)
	viper.SetDefault("sensor.base_url", "https://gridsphere.in/dapi/")
	viper.SetDefault("sensor.timeout", "10s")
	viper.SetDefault("sensor.breaker.max_requests", 1)
	viper.SetDefault("sensor.breaker.interval", "60s")
	viper.SetDefault("sensor.breaker.timeout", "30s")
	viper.SetDefault("sensor.breaker.failure_threshold", 5)
	viper.SetDefault("sensor.cache_ttl", "30s")
	viper.SetDefault("sensor.cache_size", 256)
	viper.SetDefault("sensor.influx.measurement", "orchard_sensor")

	// Advisor defaults
	viper.SetDefault("advisor.router_temperature", DefaultRouterTemperature)
	viper.SetDefault("advisor.advisor_temperature", DefaultAdvisorTemperature)
	viper.SetDefault("advisor.max_tokens", 0)

	// LLM defaults
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s")
}

func providerFromMap(providerMap map[string]interface{}) ProviderConfig {
	return ProviderConfig{
		Name:     getStringFromMap(providerMap, "name"),
		Enabled:  getBoolFromMap(providerMap, "enabled"),
		Priority: getIntFromMap(providerMap, "priority"),
		APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
		BaseURL:  getStringFromMap(providerMap, "base_url"),
		Model:    getStringFromMap(providerMap, "model"),
		Timeout:  getStringFromMap(providerMap, "timeout"),
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
// A reference to an unset variable expands to "", so the provider counts as unconfigured.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	// Try lowercase version
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration. No providers at all is valid:
// the service starts without chat and /health reports the model as missing.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	for _, d := range []string{cfg.RetryDelay, cfg.MaxTotalTimeout} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid duration %q: %w", d, err)
		}
	}

	return nil
}

func validateSensorConfig(cfg *SensorConfig) error {
	switch cfg.Source {
	case SensorSourceGridSphere:
		if cfg.BaseURL == "" {
			return fmt.Errorf("sensor.base_url is required for source %s", cfg.Source)
		}
	case SensorSourceInflux:
		if cfg.Influx.URL == "" || cfg.Influx.Bucket == "" || cfg.Influx.Org == "" {
			return fmt.Errorf("sensor.influx url, org and bucket are required for source %s", cfg.Source)
		}
	default:
		return fmt.Errorf("unknown sensor source %q", cfg.Source)
	}
	return nil
}

// splitList splits a comma separated value since viper does not parse arrays from env
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

// RetryDelayDuration parses RetryDelay; invalid or empty values yield 0.
func (c LLMConfig) RetryDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryDelay)
	return d
}

// MaxTotalTimeoutDuration parses MaxTotalTimeout; invalid or empty values yield 0.
func (c LLMConfig) MaxTotalTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.MaxTotalTimeout)
	return d
}
