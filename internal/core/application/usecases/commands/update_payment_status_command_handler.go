package commands

import (
	"context"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
)

// UpdatePaymentStatusCommandHandler applies payment signals and, once the
// change is committed, hands the downstream notifications to a dispatcher.
//
// The notifications are:
//   - update-payment-status, always
//   - notify-production, only when the payment was approved
//
// The dispatcher has no error result, so a broken downstream service can never
// turn a committed payment change into a failure.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewUpdatePaymentStatusCommandHandler creates the handler.
func NewUpdatePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, sets its payment status, saves and commits it, then
// dispatches the notifications. The updated order is returned.
func (h *UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePaymentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.apply(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, notificationsFor(o)...)

	return o, nil
}

func (h *UpdatePaymentStatusCommandHandler) apply(
	ctx context.Context,
	cmd UpdatePaymentStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.NewPaymentStatus(cmd.PaymentStatusLabel())
	if err != nil {
		return nil, err
	}

	if err = o.SetPaymentStatus(paymentStatus); err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func notificationsFor(o *order.Order) []ports.Notification {
	orderID := o.ID().String()
	notifications := []ports.Notification{{
		Kind:          ports.NotifyPaymentStatusUpdated,
		OrderID:       orderID,
		PaymentStatus: o.PaymentStatus(),
	}}

	if o.PaymentStatus().IsApproved() {
		notifications = append(notifications, ports.Notification{
			Kind:          ports.NotifyProductionApproved,
			OrderID:       orderID,
			PaymentStatus: o.PaymentStatus(),
		})
	}

	return notifications
}
