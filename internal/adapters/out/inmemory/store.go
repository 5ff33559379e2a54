// Package inmemory keeps orders in process memory. It backs STORAGE=memory and
// tests that need a real repository without a database.
//
// Stored orders are snapshots: Get always rebuilds a fresh aggregate, so two
// callers never share an *order.Order.
package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
)

// record is the stored form of an order. Statuses are kept by label.
type record struct {
	ID            string
	CustomerID    string
	Products      []string
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}

func toRecord(o *order.Order) record {
	products := make([]string, 0, len(o.Products()))
	for _, p := range o.Products() {
		products = append(products, p.String())
	}

	return record{
		ID:            o.ID().String(),
		CustomerID:    o.CustomerID().String(),
		Products:      products,
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		CreatedAt:     o.CreatedAt(),
	}
}

func (r record) toDomain() (*order.Order, error) {
	id, err := kernel.EntityIDFromString(r.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.EntityIDFromString(r.CustomerID)
	if err != nil {
		return nil, err
	}

	products := make([]kernel.EntityID, 0, len(r.Products))
	for _, p := range r.Products {
		productID, productErr := kernel.EntityIDFromString(p)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, productID)
	}

	status, err := order.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.NewPaymentStatus(r.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, products, status, paymentStatus, r.CreatedAt)
}

// Store is the shared order table.
type Store struct {
	mu     sync.RWMutex
	orders map[string]record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{orders: make(map[string]record)}
}

// PaymentStatusLabel returns the stored payment status label of an order.
func (s *Store) PaymentStatusLabel(_ context.Context, id kernel.EntityID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.orders[id.String()]
	if !ok {
		return "", errs.NewObjectNotFoundError("order", id.String())
	}
	return r.PaymentStatus, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *Store) get(id string) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.orders[id]
	if ok {
		r.Products = slices.Clone(r.Products)
	}
	return r, ok
}

// apply writes every record, failing without writing anything if an insert
// collides with an existing id.
func (s *Store) apply(writes []write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range writes {
		if _, exists := s.orders[w.record.ID]; exists && w.insert {
			return errDuplicate(w.record.ID)
		}
	}
	for _, w := range writes {
		s.orders[w.record.ID] = w.record
	}
	return nil
}

// setRaw overwrites a stored record as is. Tests use it to plant rows the
// aggregate could never produce.
func (s *Store) setRaw(r record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[r.ID] = r
}
