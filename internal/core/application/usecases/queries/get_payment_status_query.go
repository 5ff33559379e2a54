// Package queries contains read-only operations over orders.
package queries

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

// PaymentStatusUndefined is reported for orders that have no payment status label.
const PaymentStatusUndefined = "Não definido"

var (
	ErrGetPaymentStatusQueryIsNotConstructed = errors.New(
		"GetPaymentStatusQuery must be created via NewGetPaymentStatusQuery constructor",
	)
)

// GetPaymentStatusQuery asks for the current payment status label of one order.
//
// Example:
//
//	query, err := NewGetPaymentStatusQuery("order-1")
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	fmt.Println(resp.PaymentStatus) // "Aprovado"
type GetPaymentStatusQuery struct {
	orderID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetPaymentStatusQuery creates the query for the given order id.
func NewGetPaymentStatusQuery(orderID string) (GetPaymentStatusQuery, error) {
	id, err := kernel.EntityIDFromString(orderID)
	if err != nil {
		return GetPaymentStatusQuery{}, err
	}

	return GetPaymentStatusQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusQueryIsNotConstructed)
}

// OrderID returns the order being asked about.
func (q GetPaymentStatusQuery) OrderID() kernel.EntityID {
	return q.orderID
}

// GetPaymentStatusQueryResponse carries the payment status label of an order.
type GetPaymentStatusQueryResponse struct {
	OrderID       string
	PaymentStatus string
}
