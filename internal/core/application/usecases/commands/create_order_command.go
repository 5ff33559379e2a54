package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order for a customer.
// The product list may be empty; references keep the order they were given in.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewEntityID(), "customer-42", []string{"burger", "fries"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.EntityID
	customerID kernel.EntityID
	products   []kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order id, the customer reference and every product reference.
func NewCreateOrderCommand(orderID kernel.EntityID, customerID string, products []string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setProducts(products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CreateOrderCommand) OrderID() kernel.EntityID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.EntityID {
	return c.customerID
}

// Products returns the product references of the order.
func (c CreateOrderCommand) Products() []kernel.EntityID {
	return c.products
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.EntityID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	id, err := kernel.EntityIDFromString(customerID)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setProducts(products []string) error {
	refs := make([]kernel.EntityID, 0, len(products))
	for _, p := range products {
		id, err := kernel.EntityIDFromString(p)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("products", err)
		}
		refs = append(refs, id)
	}

	c.products = refs
	return nil
}
