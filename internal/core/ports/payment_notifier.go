package ports

import (
	"context"
	"time"
)

// RemoteOrder is the order representation exposed by the order-management service.
type RemoteOrder struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PaymentNotifier informs the other microservices about payment changes.
// Implementations own their retry policy; callers treat every error as final.
type PaymentNotifier interface {
	// UpdatePaymentStatus tells the order-management service the new payment label.
	UpdatePaymentStatus(ctx context.Context, orderID string, paymentStatus string) error

	// NotifyProductionApproved tells the production service the order was paid.
	NotifyProductionApproved(ctx context.Context, orderID string) error

	// FetchOrder reads an order from the order-management service.
	FetchOrder(ctx context.Context, orderID string) (RemoteOrder, error)
}
