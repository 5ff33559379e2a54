package order

import (
	"errors"
	"fmt"
)

var (
	// ErrPaymentNotApproved is returned when an order would enter preparation
	// before its payment was approved.
	ErrPaymentNotApproved = errors.New("Payment for the order has not been approved.") //nolint:stylecheck,staticcheck // user-facing message

	// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnrecognizedStatus is the cause reported when a Status label is unknown.
	ErrUnrecognizedStatus = errors.New("unrecognized status")

	// ErrUnrecognizedPaymentStatus is the cause reported when a PaymentStatus label is unknown.
	ErrUnrecognizedPaymentStatus = errors.New("unrecognized payment status")
)

// InvalidTransitionError reports a fulfillment status change that the
// transition table does not allow. Its message names both states by their
// display names and is surfaced to callers verbatim.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the from -> to pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Não é possível mudar o status de %s para %s.", e.From.DisplayName(), e.To.DisplayName())
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
