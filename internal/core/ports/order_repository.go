// Package ports defines the contracts between the order application core and
// its infrastructure: persistence, transactions and the downstream services
// that are told about payment changes.
package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Save overwrites the stored state of an order, keyed by its id.
	// There is no optimistic concurrency check: concurrent saves of the same
	// order are last-writer-wins.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. A missing order yields an
	// *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.EntityID) (*order.Order, error)
}
