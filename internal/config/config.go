package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values come from the YAML file given on the command line, environment
// variables override them and env-default fills the rest.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures optional file output next to the console
	Log struct {
		// File is the path of a rotated JSON log file; empty logs to the console only
		File string `env:"LOG_FILE" yaml:"file"`
		// MaxSizeMB is the size in megabytes at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated files to keep
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"maxBackups"`
		// MaxAgeDays is the number of days to keep rotated files
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"28" yaml:"maxAgeDays"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request, fan-out included
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Fetcher configures outbound page fetches
	Fetcher struct {
		// Timeout bounds a single page fetch; zero disables the per-fetch deadline
		Timeout time.Duration `env:"FETCHER_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// MaxConcurrency caps parallel fetches within one request; zero means unbounded
		MaxConcurrency int `env:"FETCHER_MAX_CONCURRENCY" env-default:"8" yaml:"maxConcurrency"`
		// MaxBodyBytes caps how much of each page is parsed; zero means unbounded
		MaxBodyBytes int64 `env:"FETCHER_MAX_BODY_BYTES" env-default:"5242880" yaml:"maxBodyBytes"`
		// UserAgent is sent with every outbound request
		UserAgent string `env:"FETCHER_USER_AGENT" env-default:"internist/1.0 (+metadata fetcher)" yaml:"userAgent"`
	} `yaml:"fetcher"`

	// Registry configures where the domain table comes from
	Registry struct {
		// Path of a YAML registry file; empty uses the built-in table
		Path string `env:"REGISTRY_PATH" yaml:"path"`
	} `yaml:"registry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file is present.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
