package commands

import (
	"context"

	"fastfood/internal/core/domain/model/order"
)

// CheckoutOrderCommandHandler finalizes orders.
//
// Example:
//
//	handler := NewCheckoutOrderCommandHandler(uowFactory)
//	cmd, _ := NewCheckoutOrderCommand("order-1")
//
//	finalized, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type CheckoutOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckoutOrderCommandHandler creates a handler for checkout operations.
func NewCheckoutOrderCommandHandler(uowFactory OrderUoWFactory) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, finalizes it and saves it.
// A missing order is reported as *errs.ObjectNotFoundError and nothing is saved.
func (h *CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) (*order.Order, error) {
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

	o.Finalize()

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
