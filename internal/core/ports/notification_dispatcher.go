package ports

import (
	"context"

	"fastfood/internal/core/domain/model/order"
)

// NotificationKind names the downstream call a Notification stands for.
type NotificationKind string

const (
	// NotifyPaymentStatusUpdated maps to PaymentNotifier.UpdatePaymentStatus.
	NotifyPaymentStatusUpdated NotificationKind = "update-payment-status"

	// NotifyProductionApproved maps to PaymentNotifier.NotifyProductionApproved.
	NotifyProductionApproved NotificationKind = "notify-production"
)

// Notification is one best-effort downstream call scheduled after a commit.
type Notification struct {
	Kind          NotificationKind
	OrderID       string
	PaymentStatus order.PaymentStatus
}

// NotificationDispatcher runs post-commit notifications. Dispatch has no error
// result: delivery is best-effort and failures stay inside the dispatcher.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notifications ...Notification)
}
