package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
)

// ErrUnrecognizedPaymentStatus is the cause reported for provider status words
// outside the webhook vocabulary.
var ErrUnrecognizedPaymentStatus = errors.New("unrecognized provider payment status")

// providerPaymentStatus is the payment provider's vocabulary.
type providerPaymentStatus string

const (
	providerApproved providerPaymentStatus = "approved"
	providerRejected providerPaymentStatus = "rejected"
)

func (s providerPaymentStatus) toPaymentStatus() (order.PaymentStatus, error) {
	switch s {
	case providerApproved:
		return order.PaymentApproved, nil
	case providerRejected:
		return order.PaymentRejected, nil
	default:
		return order.PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%w: %q", ErrUnrecognizedPaymentStatus, string(s)))
	}
}

// ProcessPaymentWebhookCommandHandler translates payment provider webhooks
// into Payment-Status workflow calls.
//
// Example:
//
//	handler := NewProcessPaymentWebhookCommandHandler(&paymentHandler, logger)
//	err := handler.Handle(ctx, NewProcessPaymentWebhookCommand("order-1", "approved"))
type ProcessPaymentWebhookCommandHandler struct {
	payments PaymentStatusUpdater
	logger   *slog.Logger
}

// NewProcessPaymentWebhookCommandHandler creates the translator.
func NewProcessPaymentWebhookCommandHandler(
	payments PaymentStatusUpdater,
	logger *slog.Logger,
) ProcessPaymentWebhookCommandHandler {
	return ProcessPaymentWebhookCommandHandler{
		payments: payments,
		logger:   logger.With("component", "PaymentWebhook"),
	}
}

// Handle processes one webhook.
//
//   - blank order id or status: logged and acknowledged, no workflow call
//   - unknown status word: ErrUnrecognizedPaymentStatus (wrapped in errs.ValueIsInvalidError), no workflow call
//   - "approved" / "rejected": delegated as Aprovado / Recusado
func (h *ProcessPaymentWebhookCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentWebhookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.IsMalformed() {
		h.logger.WarnContext(ctx, "ignoring malformed payment webhook",
			"order_id", cmd.OrderID(), "status", cmd.ProviderStatus())
		return nil
	}

	paymentStatus, err := providerPaymentStatus(cmd.ProviderStatus()).toPaymentStatus()
	if err != nil {
		return err
	}

	update, err := NewUpdatePaymentStatusCommand(cmd.OrderID(), paymentStatus.String())
	if err != nil {
		return err
	}

	_, err = h.payments.Handle(ctx, update)
	return err
}
