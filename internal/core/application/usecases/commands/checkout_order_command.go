package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrCheckoutOrderCommandIsNotConstructed = errors.New(
		"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
	)
)

// CheckoutOrderCommand represents a request to hand an order over to the customer.
// Checkout has no payment precondition and may be repeated.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a checkout command for the given order id.
func NewCheckoutOrderCommand(orderID string) (CheckoutOrderCommand, error) {
	id, err := kernel.EntityIDFromString(orderID)
	if err != nil {
		return CheckoutOrderCommand{}, err
	}

	return CheckoutOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the order to check out.
func (c CheckoutOrderCommand) OrderID() kernel.EntityID {
	return c.orderID
}
