package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand represents a request to move an order forward in
// its fulfillment chain.
//
// With an empty target the order takes exactly one step (Recebido -> Em preparação
// -> Pronto -> Finalizado). With a target label the order is asked to change to
// that status directly, still subject to the transition table and the payment
// precondition.
//
// An order in Em preparação always has a next step (Pronto), so the
// "Preparação para Preparação" refusal is only reachable by sending
// "Em preparação" as the target.
//
// Example:
//
//	next, _ := NewAdvanceOrderStatusCommand("order-1", "")
//	ready, _ := NewAdvanceOrderStatusCommand("order-1", "Pronto")
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.EntityID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates the command. A non-empty target must be
// one of the status labels.
func NewAdvanceOrderStatusCommand(orderID string, target string) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.EntityID {
	return c.orderID
}

// Target returns the requested status and whether one was given.
func (c AdvanceOrderStatusCommand) Target() (order.Status, bool) {
	return c.target, c.target != order.Unknown
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID string) error {
	id, err := kernel.EntityIDFromString(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target string) error {
	if target == "" {
		return nil
	}

	status, err := order.NewStatus(target)
	if err != nil {
		return err
	}

	c.target = status
	return nil
}
