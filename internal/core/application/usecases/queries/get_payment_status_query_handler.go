package queries

import (
	"context"

	"fastfood/internal/core/ports"
)

// GetPaymentStatusQueryHandler reads payment status labels straight from storage.
type GetPaymentStatusQueryHandler struct {
	reader ports.PaymentStatusReader
}

// NewGetPaymentStatusQueryHandler creates the handler.
func NewGetPaymentStatusQueryHandler(reader ports.PaymentStatusReader) GetPaymentStatusQueryHandler {
	return GetPaymentStatusQueryHandler{reader: reader}
}

// Handle returns the stored label, or PaymentStatusUndefined when the order has
// none. A missing order is reported as *errs.ObjectNotFoundError.
func (h GetPaymentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatusQuery,
) (GetPaymentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	label, err := h.reader.PaymentStatusLabel(ctx, query.OrderID())
	if err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	if label == "" {
		label = PaymentStatusUndefined
	}

	return GetPaymentStatusQueryResponse{
		OrderID:       query.OrderID().String(),
		PaymentStatus: label,
	}, nil
}
