package order

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// PaymentStatus represents the payment stage of an order. Unlike Status it
// has no transition table: any payment signal may set any value directly.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every new order.
	PaymentPending

	// PaymentApproved unlocks preparation of the order.
	PaymentApproved

	// PaymentRejected records a refused payment.
	PaymentRejected
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentPending:  "Pendente",
	PaymentApproved: "Aprovado",
	PaymentRejected: "Recusado",
}

// NewPaymentStatus parses a payment status label ("Pendente", "Aprovado",
// "Recusado"). Any other label fails with a ValueIsInvalidError whose cause
// is ErrUnrecognizedPaymentStatus.
func NewPaymentStatus(label string) (PaymentStatus, error) {
	for ps, l := range paymentStatusLabels {
		if l == label {
			return ps, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%w: %q", ErrUnrecognizedPaymentStatus, label))
}

// Validate checks that ps is one of the three defined payment statuses.
func (ps PaymentStatus) Validate() error {
	if _, ok := paymentStatusLabels[ps]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid", fmt.Errorf("%d is not a valid payment status", ps))
	}
	return nil
}

// String returns the payment status label, or "Unknown" for invalid values.
func (ps PaymentStatus) String() string {
	if l, ok := paymentStatusLabels[ps]; ok {
		return l
	}
	return "Unknown"
}

// IsApproved reports whether the payment was approved.
func (ps PaymentStatus) IsApproved() bool {
	return ps == PaymentApproved
}
