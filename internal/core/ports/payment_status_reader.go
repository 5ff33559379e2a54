package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
)

// PaymentStatusReader reads the stored payment status label of an order
// without rebuilding the aggregate. An order without a label yields "".
// A missing order yields an *errs.ObjectNotFoundError.
type PaymentStatusReader interface {
	PaymentStatusLabel(ctx context.Context, orderID kernel.EntityID) (string, error)
}
