// Package dispatch runs the best-effort notifications scheduled after an order
// change is committed.
//
// Two dispatchers implement ports.NotificationDispatcher:
//   - InlineDispatcher delivers immediately, on the caller's goroutine
//   - QueueDispatcher buffers notifications for a background job to Drain
//
// Both detach delivery from the caller's cancellation, log every failure and
// never report it back: the order change has already been committed.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"fastfood/internal/core/ports"
)

// deliver performs a single notification and logs any failure, including a panic
// raised by the notifier.
func deliver(ctx context.Context, notifier ports.PaymentNotifier, logger *slog.Logger, n ports.Notification) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Notifier panicked while delivering notification",
				"order_id", n.OrderID, "task", n.Kind, "panic", fmt.Sprint(r))
		}
	}()

	var err error
	switch n.Kind {
	case ports.NotifyPaymentStatusUpdated:
		err = notifier.UpdatePaymentStatus(ctx, n.OrderID, n.PaymentStatus.String())
	case ports.NotifyProductionApproved:
		err = notifier.NotifyProductionApproved(ctx, n.OrderID)
	default:
		err = fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	if err != nil {
		logger.ErrorContext(ctx, "Failed to notify downstream service about payment status change",
			"order_id", n.OrderID, "task", n.Kind, "error", err)
		return
	}

	logger.DebugContext(ctx, "Notification delivered", "order_id", n.OrderID, "task", n.Kind)
}
