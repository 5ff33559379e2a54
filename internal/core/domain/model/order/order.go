package order

import (
	"errors"
	"slices"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer's order. It owns the fulfillment
// Status and the PaymentStatus and is the only place either one changes.
//
// Order follows these invariants:
//   - Identity and customer reference are always set
//   - Status and PaymentStatus are always valid values (Recebido / Pendente on creation)
//   - A fulfillment change is applied only when the transition table allows it
//   - Entering Em preparação requires PaymentApproved
//   - A rejected change leaves every field untouched
type Order struct {
	id         kernel.EntityID
	customerID kernel.EntityID

	// products holds the product references in the order they were added.
	products []kernel.EntityID

	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Recebido / Pendente, stamped with the current
// UTC time. The product list may be empty; it is copied.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewEntityID(), customerID, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.EntityID, customerID kernel.EntityID, products []kernel.EntityID) (*Order, error) {
	return RestoreOrder(id, customerID, products, Received, PaymentPending, time.Now().UTC())
}

// RestoreOrder rebuilds an aggregate from persisted state. Every field is
// validated exactly as NewOrder does, plus both statuses.
func RestoreOrder(
	id kernel.EntityID,
	customerID kernel.EntityID,
	products []kernel.EntityID,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setProducts(products),
		o.setStatus(status),
		o.SetPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.EntityID {
	return o.id
}

// CustomerID returns the reference to the customer who placed the order.
func (o *Order) CustomerID() kernel.EntityID {
	return o.customerID
}

// Products returns a copy of the product references.
func (o *Order) Products() []kernel.EntityID {
	return slices.Clone(o.products)
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvanceStatus moves the order exactly one step along the fulfillment chain
// (see Status.Next). It is ChangeStatus applied to the computed next step, so
// entering Em preparação still requires an approved payment.
func (o *Order) AdvanceStatus() error {
	return o.ChangeStatus(o.status.Next())
}

// ChangeStatus moves the order to target.
//
// This method enforces the following business rules:
//   - target Em preparação requires PaymentApproved (ErrPaymentNotApproved)
//   - the transition table must allow status -> target (*InvalidTransitionError)
//
// On failure the aggregate is left unchanged.
func (o *Order) ChangeStatus(target Status) error {
	if target == InPreparation && !o.paymentStatus.IsApproved() {
		return ErrPaymentNotApproved
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Finalize checks the order out. It succeeds from every status regardless of
// payment, and finalizing a finalized order is a no-op.
func (o *Order) Finalize() {
	o.status = Finalized
}

// SetPaymentStatus replaces the payment status. Fulfillment status is not
// touched. Only invalid values (e.g. PaymentUnknown) are rejected.
func (o *Order) SetPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.EntityID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setProducts(products []kernel.EntityID) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("products", err)
		}
	}
	o.products = slices.Clone(products)
	if o.products == nil {
		o.products = []kernel.EntityID{}
	}
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
