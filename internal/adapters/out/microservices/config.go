// Package microservices talks to the order-management and production services
// over HTTP+JSON. Every call is bounded by a timeout, retried with exponential
// backoff and guarded by a circuit breaker per downstream service.
package microservices

import (
	"strings"
	"time"
)

const (
	DefaultOrderServiceURL      = "http://localhost:3333"
	DefaultProductionServiceURL = "http://localhost:3335"
	DefaultTimeout              = 5 * time.Second
	DefaultMaxRetries           = 2
	DefaultInitialInterval      = 200 * time.Millisecond
	DefaultMaxInterval          = 2 * time.Second
)

// Config holds the downstream endpoints and the call policy.
type Config struct {
	OrderServiceURL      string
	ProductionServiceURL string

	// Timeout bounds a single attempt.
	Timeout time.Duration

	// MaxRetries is the number of attempts after the first one. Zero disables retries.
	MaxRetries int

	InitialInterval time.Duration
	MaxInterval     time.Duration

	// BreakerFailures is the number of consecutive failures that opens a breaker.
	BreakerFailures uint32

	// BreakerCooldown is how long an open breaker rejects calls before probing.
	BreakerCooldown time.Duration
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		OrderServiceURL:      DefaultOrderServiceURL,
		ProductionServiceURL: DefaultProductionServiceURL,
		Timeout:              DefaultTimeout,
		MaxRetries:           DefaultMaxRetries,
		InitialInterval:      DefaultInitialInterval,
		MaxInterval:          DefaultMaxInterval,
		BreakerFailures:      5,
		BreakerCooldown:      30 * time.Second,
	}
}

func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.OrderServiceURL == "" {
		cfg.OrderServiceURL = def.OrderServiceURL
	}
	if cfg.ProductionServiceURL == "" {
		cfg.ProductionServiceURL = def.ProductionServiceURL
	}
	cfg.OrderServiceURL = strings.TrimRight(cfg.OrderServiceURL, "/")
	cfg.ProductionServiceURL = strings.TrimRight(cfg.ProductionServiceURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = def.InitialInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = def.MaxInterval
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = def.BreakerFailures
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = def.BreakerCooldown
	}
	return cfg
}
