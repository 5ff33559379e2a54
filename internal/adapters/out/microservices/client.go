package microservices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceOrder      = "order-service"
	serviceProduction = "production-service"

	opUpdatePaymentStatus = "update-payment-status"
	opNotifyProduction    = "notify-production"
	opFetchOrder          = "fetch-order"

	paymentApprovedEvent = "payment_approved"

	maxResponseBytes = 1 << 20
)

var _ ports.PaymentNotifier = (*Client)(nil)

// Client is the HTTP implementation of ports.PaymentNotifier.
//
// Example:
//
//	client := microservices.NewClient(microservices.DefaultConfig(),
//	    microservices.NewMetrics(prometheus.DefaultRegisterer), logger)
//	err := client.UpdatePaymentStatus(ctx, "order-1", "Aprovado")
type Client struct {
	cfg        Config
	httpClient *http.Client
	breakers   map[string]*gobreaker.CircuitBreaker[[]byte]
	metrics    *Metrics
	logger     *slog.Logger
}

// NewClient creates a client. Missing config values fall back to DefaultConfig.
func NewClient(cfg Config, metrics *Metrics, logger *slog.Logger) *Client {
	cfg = normalizeConfig(cfg)
	logger = logger.With("component", "PaymentNotifier")

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: metrics,
		logger:  logger,
	}
	c.breakers = map[string]*gobreaker.CircuitBreaker[[]byte]{
		serviceOrder:      c.newBreaker(serviceOrder),
		serviceProduction: c.newBreaker(serviceProduction),
	}
	return c
}

// UpdatePaymentStatus sends PATCH {order}/orders/{id}/payment-status with {"paymentStatus": label}.
func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID string, paymentStatus string) error {
	endpoint := fmt.Sprintf("%s/orders/%s/payment-status", c.cfg.OrderServiceURL, url.PathEscape(orderID))
	_, err := c.call(ctx, serviceOrder, opUpdatePaymentStatus, http.MethodPatch, endpoint,
		map[string]string{"paymentStatus": paymentStatus})
	return err
}

// NotifyProductionApproved sends POST {production}/orders/{id}/payment-approved.
func (c *Client) NotifyProductionApproved(ctx context.Context, orderID string) error {
	endpoint := fmt.Sprintf("%s/orders/%s/payment-approved", c.cfg.ProductionServiceURL, url.PathEscape(orderID))
	_, err := c.call(ctx, serviceProduction, opNotifyProduction, http.MethodPost, endpoint,
		map[string]string{"orderId": orderID, "status": paymentApprovedEvent})
	return err
}

// FetchOrder reads GET {order}/order/{id}. A 404 is reported as *errs.ObjectNotFoundError.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (ports.RemoteOrder, error) {
	endpoint := fmt.Sprintf("%s/order/%s", c.cfg.OrderServiceURL, url.PathEscape(orderID))
	body, err := c.call(ctx, serviceOrder, opFetchOrder, http.MethodGet, endpoint, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return ports.RemoteOrder{}, errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
		}
		return ports.RemoteOrder{}, err
	}

	var envelope struct {
		Order ports.RemoteOrder `json:"order"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return ports.RemoteOrder{}, fmt.Errorf("decode %s response: %w", opFetchOrder, err)
	}
	return envelope.Order, nil
}

func (c *Client) call(
	ctx context.Context,
	service, operation, method, endpoint string,
	payload any,
) ([]byte, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, err
		}
	}

	breaker := c.breakers[service]
	var result []byte

	err := backoff.RetryNotify(
		func() error {
			respBody, err := breaker.Execute(func() ([]byte, error) {
				return c.do(ctx, service, method, endpoint, body)
			})
			if err != nil {
				if isClientError(err) ||
					errors.Is(err, gobreaker.ErrOpenState) ||
					errors.Is(err, gobreaker.ErrTooManyRequests) {
					return backoff.Permanent(err)
				}
				return err
			}
			result = respBody
			return nil
		},
		c.newBackOff(ctx),
		func(err error, wait time.Duration) {
			c.metrics.retried(service, operation)
			c.logger.DebugContext(ctx, "retrying downstream call",
				"service", service, "operation", operation, "wait", wait, "error", err)
		},
	)

	c.metrics.observe(service, operation, err)
	return result, err
}

func (c *Client) do(ctx context.Context, service, method, endpoint string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Service: service, Method: method, URL: endpoint, StatusCode: resp.StatusCode}
	}
	if err != nil {
		return nil, err
	}
	return respBody, nil
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.cfg.InitialInterval
	exp.MaxInterval = c.cfg.MaxInterval
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.cfg.MaxRetries)), ctx)
}

func (c *Client) newBreaker(service string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        service,
		MaxRequests: 1,
		Timeout:     c.cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= c.cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed", "service", name, "from", from.String(), "to", to.String())
		},
	})
}
