package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Metrics.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RateLimit.Requests < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit.requests must be >= 0, got %d", s.RateLimit.Requests))
	}
	if s.RateLimit.Requests > 0 && s.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("server.rate_limit.window must be positive when requests is set"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if strings.TrimSpace(s.SQLite.Path) == "" {
			return errors.New("storage.sqlite.path must not be empty for the sqlite driver")
		}
		return nil
	case DriverRedis:
		var errs []error
		if strings.TrimSpace(s.Redis.Addr) == "" {
			errs = append(errs, errors.New("storage.redis.addr must not be empty for the redis driver"))
		}
		if s.Redis.DB < 0 {
			errs = append(errs, fmt.Errorf("storage.redis.db must be >= 0, got %d", s.Redis.DB))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("storage.driver must be one of: memory, sqlite, redis; got %q", s.Driver)
	}
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (m *MetricsConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", m.Path)
	}
	return nil
}
