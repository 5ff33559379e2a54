package dispatch

import (
	"context"
	"log/slog"

	"fastfood/internal/core/ports"
)

// DefaultQueueSize is the capacity used when NewQueueDispatcher gets a non-positive size.
const DefaultQueueSize = 1024

// QueueDispatcher buffers notifications in a bounded in-memory queue. Dispatch
// never blocks: when the queue is full the notification is dropped and logged.
// Queued notifications are delivered by Drain, which the notification dispatch
// job calls on a schedule. Notifications still queued when the process exits are lost.
type QueueDispatcher struct {
	notifier ports.PaymentNotifier
	logger   *slog.Logger
	queue    chan ports.Notification
}

// NewQueueDispatcher creates a dispatcher with room for size pending notifications.
func NewQueueDispatcher(notifier ports.PaymentNotifier, logger *slog.Logger, size int) *QueueDispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &QueueDispatcher{
		notifier: notifier,
		logger:   logger.With("component", "queue_notification_dispatcher"),
		queue:    make(chan ports.Notification, size),
	}
}

// Dispatch enqueues the notifications.
func (d *QueueDispatcher) Dispatch(ctx context.Context, notifications ...ports.Notification) {
	for _, n := range notifications {
		select {
		case d.queue <- n:
		default:
			d.logger.ErrorContext(ctx, "Notification queue is full, dropping notification",
				"order_id", n.OrderID, "task", n.Kind)
		}
	}
}

// Drain delivers the notifications queued when it was called and returns how
// many it handled. Notifications enqueued while draining wait for the next call.
func (d *QueueDispatcher) Drain(ctx context.Context) int {
	pending := len(d.queue)
	for i := range pending {
		if ctx.Err() != nil {
			return i
		}
		select {
		case n := <-d.queue:
			deliver(ctx, d.notifier, d.logger, n)
		default:
			return i
		}
	}
	return pending
}

// Len returns the number of queued notifications.
func (d *QueueDispatcher) Len() int {
	return len(d.queue)
}
