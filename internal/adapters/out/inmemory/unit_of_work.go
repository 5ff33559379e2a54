package inmemory

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
	ErrNoTransaction = errors.New("no active transaction")

	// ErrDuplicateOrder is returned when Add meets an id that is already stored.
	ErrDuplicateOrder = errors.New("order already exists")
)

func errDuplicate(id string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateOrder, id)
}

type write struct {
	record record
	insert bool
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers writes between Begin and Commit. Reads inside the
// transaction see its own pending writes. Without Begin every write goes
// straight to the store.
type UnitOfWork struct {
	store   *Store
	active  bool
	pending []write
}

// Begin opens a transaction. Calling it twice is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.active = true
	uow.pending = nil
	return nil
}

// Commit applies the pending writes atomically.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}

	err := uow.store.apply(uow.pending)
	uow.active = false
	uow.pending = nil
	return err
}

// Rollback drops the pending writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	uow.pending = nil
	return nil
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) write(w write) error {
	if !uow.active {
		return uow.store.apply([]write{w})
	}

	if w.insert {
		if _, ok := uow.lookup(w.record.ID); ok {
			return errDuplicate(w.record.ID)
		}
	}
	uow.pending = append(uow.pending, w)
	return nil
}

func (uow *UnitOfWork) lookup(id string) (record, bool) {
	for i := len(uow.pending) - 1; i >= 0; i-- {
		if uow.pending[i].record.ID == id {
			return uow.pending[i].record, true
		}
	}
	return uow.store.get(id)
}

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stores a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(write{record: toRecord(aggregate), insert: true})
}

// Save overwrites the stored order by id. The last save wins.
func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(write{record: toRecord(aggregate)})
}

// Get rebuilds the order from its stored snapshot.
func (r *OrderRepository) Get(_ context.Context, id kernel.EntityID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	rec, ok := r.uow.lookup(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return rec.toDomain()
}
