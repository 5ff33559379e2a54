package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
		"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
	)
)

// UpdatePaymentStatusCommand represents a payment signal for an order.
// The label is carried as text and parsed by the handler once the order is
// loaded, so an unknown order is reported before an unknown label.
//
// Example:
//
//	cmd, _ := NewUpdatePaymentStatusCommand("order-1", "Aprovado")
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrUnrecognizedPaymentStatus) {
//	    // caller sent something other than Pendente/Aprovado/Recusado
//	}
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.EntityID
	paymentStatusLabel string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates the command from an order id and a
// payment status label ("Pendente", "Aprovado", "Recusado").
func NewUpdatePaymentStatusCommand(orderID string, paymentStatus string) (UpdatePaymentStatusCommand, error) {
	command := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}
	command.paymentStatusLabel = paymentStatus

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the order the payment belongs to.
func (c UpdatePaymentStatusCommand) OrderID() kernel.EntityID {
	return c.orderID
}

// PaymentStatusLabel returns the requested payment status label, unparsed.
func (c UpdatePaymentStatusCommand) PaymentStatusLabel() string {
	return c.paymentStatusLabel
}

func (c *UpdatePaymentStatusCommand) setOrderID(orderID string) error {
	id, err := kernel.EntityIDFromString(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}
