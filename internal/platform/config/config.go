// Package config provides configuration loading and validation for the
// funnel server and the funnelctl client. Configuration is loaded from YAML
// files with environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers accepted in storage.driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string          `koanf:"host"`
	Port         int             `koanf:"port"`
	ReadTimeout  time.Duration   `koanf:"read_timeout"`
	WriteTimeout time.Duration   `koanf:"write_timeout"`
	IdleTimeout  time.Duration   `koanf:"idle_timeout"`
	RateLimit    RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig bounds write requests per client IP. Zero requests
// disables the limit.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects and configures the company and event stores.
type StorageConfig struct {
	Driver string       `koanf:"driver"`
	SQLite SQLiteConfig `koanf:"sqlite"`
	Redis  RedisConfig  `koanf:"redis"`
}

// SQLiteConfig holds the SQLite database location.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Prefix   string `koanf:"prefix"`
}

// ClientConfig holds settings for HTTP clients of the funnel API.
type ClientConfig struct {
	BaseURL        string                `koanf:"base_url"`
	Timeout        time.Duration         `koanf:"timeout"`
	Retry          RetryConfig           `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig  `koanf:"circuit_breaker"`
	RateLimit      ClientRateLimitConfig `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// ClientRateLimitConfig is a token bucket for outbound calls. Zero
// RequestsPerSecond disables it.
type ClientRateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
}
