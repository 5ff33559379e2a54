package dispatch

import (
	"context"
	"log/slog"

	"fastfood/internal/core/ports"
)

// InlineDispatcher delivers notifications synchronously, in order, before
// Dispatch returns.
type InlineDispatcher struct {
	notifier ports.PaymentNotifier
	logger   *slog.Logger
}

// NewInlineDispatcher creates a dispatcher that calls notifier directly.
func NewInlineDispatcher(notifier ports.PaymentNotifier, logger *slog.Logger) *InlineDispatcher {
	return &InlineDispatcher{
		notifier: notifier,
		logger:   logger.With("component", "inline_notification_dispatcher"),
	}
}

// Dispatch delivers every notification. Each one is attempted even if an
// earlier one failed.
func (d *InlineDispatcher) Dispatch(ctx context.Context, notifications ...ports.Notification) {
	ctx = context.WithoutCancel(ctx)
	for _, n := range notifications {
		deliver(ctx, d.notifier, d.logger, n)
	}
}
