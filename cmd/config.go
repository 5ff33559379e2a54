package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fastfood/internal/adapters/out/microservices"
	"fastfood/internal/core/application/dispatch"
	"fastfood/internal/pkg/errs"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	NotificationModeQueue  = "queue"
	NotificationModeInline = "inline"
)

type Config struct {
	HTTPPort   string
	Storage    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OrderServiceURL      string
	ProductionServiceURL string
	NotifierTimeout      time.Duration
	NotifierMaxRetries   int

	NotificationMode      string
	NotificationQueueSize int
}

// ConfigFromEnv reads the configuration through getenv, applying defaults for
// unset keys. Only malformed numbers, durations and enum values are errors.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	notifier := microservices.DefaultConfig()

	c := Config{
		HTTPPort:              valueOr(getenv("HTTP_PORT"), "8082"),
		Storage:               strings.ToLower(valueOr(getenv("STORAGE"), StoragePostgres)),
		DBHost:                valueOr(getenv("DB_HOST"), "localhost"),
		DBPort:                valueOr(getenv("DB_PORT"), "5432"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             valueOr(getenv("DB_SSLMODE"), "disable"),
		OrderServiceURL:       valueOr(getenv("ORDER_SERVICE_URL"), notifier.OrderServiceURL),
		ProductionServiceURL:  valueOr(getenv("PRODUCTION_SERVICE_URL"), notifier.ProductionServiceURL),
		NotifierTimeout:       notifier.Timeout,
		NotifierMaxRetries:    notifier.MaxRetries,
		NotificationMode:      strings.ToLower(valueOr(getenv("NOTIFICATION_MODE"), NotificationModeQueue)),
		NotificationQueueSize: dispatch.DefaultQueueSize,
	}

	var errList []error
	if v := getenv("NOTIFIER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("NOTIFIER_TIMEOUT", fmt.Errorf("%q", v)))
		}
		c.NotifierTimeout = d
	}
	if v := getenv("NOTIFIER_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("NOTIFIER_MAX_RETRIES", fmt.Errorf("%q", v)))
		}
		c.NotifierMaxRetries = n
	}
	if v := getenv("NOTIFICATION_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("NOTIFICATION_QUEUE_SIZE", fmt.Errorf("%q", v)))
		}
		c.NotificationQueueSize = n
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("STORAGE", fmt.Errorf("%q", c.Storage)))
	}
	if c.NotificationMode != NotificationModeQueue && c.NotificationMode != NotificationModeInline {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("NOTIFICATION_MODE", fmt.Errorf("%q", c.NotificationMode)))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DSN returns the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NotifierConfig returns the downstream client configuration.
func (c Config) NotifierConfig() microservices.Config {
	cfg := microservices.DefaultConfig()
	cfg.OrderServiceURL = c.OrderServiceURL
	cfg.ProductionServiceURL = c.ProductionServiceURL
	cfg.Timeout = c.NotifierTimeout
	cfg.MaxRetries = c.NotifierMaxRetries
	return cfg
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
