package commands

import (
	"context"

	"fastfood/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler moves orders along the fulfillment chain.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status changes.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and applies the change.
//
// Domain refusals (order.ErrPaymentNotApproved, *order.InvalidTransitionError)
// are returned as they come from the aggregate, and nothing is saved.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

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

	if target, ok := cmd.Target(); ok {
		err = o.ChangeStatus(target)
	} else {
		err = o.AdvanceStatus()
	}
	if err != nil {
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
