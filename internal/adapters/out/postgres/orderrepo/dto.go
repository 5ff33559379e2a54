// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Both statuses are stored by label so the table reads the same way the API does.
type OrderDTO struct {
	ID            string         `gorm:"type:varchar(64);primaryKey"`
	CustomerID    string         `gorm:"type:varchar(64);not null;index"`
	Products      pq.StringArray `gorm:"type:text[];not null"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	PaymentStatus string         `gorm:"type:varchar(32)"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	products := make(pq.StringArray, 0, len(o.Products()))
	for _, p := range o.Products() {
		products = append(products, p.String())
	}

	return OrderDTO{
		ID:            o.ID().String(),
		CustomerID:    o.CustomerID().String(),
		Products:      products,
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		CreatedAt:     o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Unknown labels in the row are reported as validation errors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.EntityIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.EntityIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	products := make([]kernel.EntityID, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, productErr := kernel.EntityIDFromString(p)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, productID)
	}

	status, err := order.NewStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.NewPaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, products, status, paymentStatus, dto.CreatedAt.UTC())
}
