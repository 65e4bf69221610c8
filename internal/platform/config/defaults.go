package config

const (
	defaultServerPort = 8080

	defaultRateLimitRequests = 120

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultClientRPS   = 20.0
	defaultClientBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_timeout":        "5s",
		"server.write_timeout":       "10s",
		"server.idle_timeout":        "120s",
		"server.rate_limit.requests": defaultRateLimitRequests,
		"server.rate_limit.window":   "1m",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":         DriverMemory,
		"storage.sqlite.path":    "data/crm.db",
		"storage.redis.addr":     "localhost:6379",
		"storage.redis.password": "",
		"storage.redis.db":       0,
		"storage.redis.prefix":   "crm:",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultClientRPS,
		"client.rate_limit.burst_size":           defaultClientBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "crm-stages",

		"metrics.enabled":   true,
		"metrics.path":      "/metrics",
		"metrics.namespace": "crm",
	}
}
