package microservices

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

const (
	outcomeSuccess     = "success"
	outcomeClientError = "client_error"
	outcomeBreakerOpen = "breaker_open"
	outcomeError       = "error"
)

// Metrics holds the Prometheus collectors of the notifier.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	retriesTotal  *prometheus.CounterVec
}

// NewMetrics registers the notifier collectors with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fastfood",
				Subsystem: "notifier",
				Name:      "requests_total",
				Help:      "Downstream calls by service, operation and final outcome.",
			},
			[]string{"service", "operation", "outcome"},
		),
		retriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fastfood",
				Subsystem: "notifier",
				Name:      "retries_total",
				Help:      "Retried downstream attempts by service and operation.",
			},
			[]string{"service", "operation"},
		),
	}
}

func (m *Metrics) observe(service, operation string, err error) {
	m.requestsTotal.WithLabelValues(service, operation, outcomeOf(err)).Inc()
}

func (m *Metrics) retried(service, operation string) {
	m.retriesTotal.WithLabelValues(service, operation).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return outcomeBreakerOpen
	case isClientError(err):
		return outcomeClientError
	default:
		return outcomeError
	}
}
