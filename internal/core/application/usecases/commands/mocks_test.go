package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.EntityID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentNotifier struct{ mock.Mock }

func (m *MockPaymentNotifier) UpdatePaymentStatus(ctx context.Context, orderID string, paymentStatus string) error {
	args := m.Called(ctx, orderID, paymentStatus)
	return args.Error(0)
}

func (m *MockPaymentNotifier) NotifyProductionApproved(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockPaymentNotifier) FetchOrder(ctx context.Context, orderID string) (ports.RemoteOrder, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.RemoteOrder), args.Error(1)
}

type MockPaymentStatusUpdater struct{ mock.Mock }

func (m *MockPaymentStatusUpdater) Handle(
	ctx context.Context,
	cmd commands.UpdatePaymentStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoreOrder(status order.Status, paymentStatus order.PaymentStatus) *order.Order {
	o, err := order.RestoreOrder(
		kernel.MustEntityIDFromString("order-1"),
		kernel.MustEntityIDFromString("customer-1"),
		nil,
		status,
		paymentStatus,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return o
}

// expectLoad wires factory -> uow -> repo for a handler that loads order-1.
func expectLoad(
	ctx context.Context,
	found *order.Order,
	getErr error,
) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	if getErr != nil {
		repo.On("Get", ctx, kernel.MustEntityIDFromString("order-1")).Return(nil, getErr).Once()
	} else {
		repo.On("Get", ctx, kernel.MustEntityIDFromString("order-1")).Return(found, nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}
