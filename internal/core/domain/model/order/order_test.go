package order_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, status order.Status, paymentStatus order.PaymentStatus) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.MustEntityIDFromString("order-1"),
		kernel.MustEntityIDFromString("customer-1"),
		nil,
		status,
		paymentStatus,
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewEntityID()
	customerID := kernel.MustEntityIDFromString("customer-1")

	t.Run("should create order with default statuses", func(t *testing.T) {
		before := time.Now().UTC()

		o, err := order.NewOrder(validID, customerID, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Empty(t, o.Products())
		assert.NotNil(t, o.Products())
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should keep product order", func(t *testing.T) {
		products := []kernel.EntityID{
			kernel.MustEntityIDFromString("burger"),
			kernel.MustEntityIDFromString("fries"),
			kernel.MustEntityIDFromString("burger"),
		}

		o, err := order.NewOrder(validID, customerID, products)

		require.NoError(t, err)
		assert.Equal(t, products, o.Products())
	})

	t.Run("should not share the product slice", func(t *testing.T) {
		products := []kernel.EntityID{kernel.MustEntityIDFromString("burger")}
		o, err := order.NewOrder(validID, customerID, products)
		require.NoError(t, err)

		products[0] = kernel.MustEntityIDFromString("salad")
		returned := o.Products()
		returned[0] = kernel.MustEntityIDFromString("soda")

		assert.Equal(t, "burger", o.Products()[0].String())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.EntityID

		o, err := order.NewOrder(invalidID, customerID, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "entity ID must be created")
	})

	t.Run("should fail without customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, kernel.EntityID{}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with blank product reference", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, []kernel.EntityID{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.EntityID{}, kernel.EntityID{}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "entity ID must be created")
		assert.Contains(t, err.Error(), "customerId")
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.MustEntityIDFromString("order-1")
	customerID := kernel.MustEntityIDFromString("customer-1")
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore every field", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, nil, order.Ready, order.PaymentApproved, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, nil, order.Unknown, order.PaymentApproved, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject unknown payment status", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, nil, order.Received, order.PaymentUnknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "payment status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newTestOrder(t, order.Received, order.PaymentPending)
	o2 := newTestOrder(t, order.Ready, order.PaymentApproved)
	o3, err := order.NewOrder(kernel.NewEntityID(), kernel.MustEntityIDFromString("customer-1"), nil)
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_AdvanceStatus(t *testing.T) {
	t.Run("should move received order with approved payment into preparation", func(t *testing.T) {
		o := newTestOrder(t, order.Received, order.PaymentApproved)

		err := o.AdvanceStatus()

		require.NoError(t, err)
		assert.Equal(t, order.InPreparation, o.Status())
		assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
	})

	t.Run("should refuse preparation without approved payment", func(t *testing.T) {
		for _, ps := range []order.PaymentStatus{order.PaymentPending, order.PaymentRejected} {
			t.Run(ps.String(), func(t *testing.T) {
				o := newTestOrder(t, order.Received, ps)

				err := o.AdvanceStatus()

				require.ErrorIs(t, err, order.ErrPaymentNotApproved)
				assert.Equal(t, "Payment for the order has not been approved.", err.Error())
				assert.Equal(t, order.Received, o.Status())
				assert.Equal(t, ps, o.PaymentStatus())
			})
		}
	})

	t.Run("should walk the whole chain one step at a time", func(t *testing.T) {
		o := newTestOrder(t, order.Received, order.PaymentApproved)

		for _, expected := range []order.Status{order.InPreparation, order.Ready, order.Finalized, order.Finalized} {
			require.NoError(t, o.AdvanceStatus())
			assert.Equal(t, expected, o.Status())
		}
	})

	t.Run("should not require approval past preparation", func(t *testing.T) {
		o := newTestOrder(t, order.InPreparation, order.PaymentRejected)

		require.NoError(t, o.AdvanceStatus())
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should refuse to stay in preparation", func(t *testing.T) {
		o := newTestOrder(t, order.InPreparation, order.PaymentApproved)

		err := o.ChangeStatus(order.InPreparation)

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "Não é possível mudar o status de Preparação para Preparação.", err.Error())
		assert.Equal(t, order.InPreparation, o.Status())
	})

	t.Run("should check payment before the transition table", func(t *testing.T) {
		o := newTestOrder(t, order.Ready, order.PaymentPending)

		err := o.ChangeStatus(order.InPreparation)

		require.ErrorIs(t, err, order.ErrPaymentNotApproved)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should refuse going backwards", func(t *testing.T) {
		o := newTestOrder(t, order.Finalized, order.PaymentApproved)

		err := o.ChangeStatus(order.Ready)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, "Não é possível mudar o status de Finalizado para Pronto.", err.Error())
		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("should refuse skipping preparation", func(t *testing.T) {
		o := newTestOrder(t, order.Received, order.PaymentApproved)

		err := o.ChangeStatus(order.Ready)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Received, o.Status())
	})
}

func TestOrder_Finalize(t *testing.T) {
	paymentStatuses := []order.PaymentStatus{order.PaymentPending, order.PaymentApproved, order.PaymentRejected}

	for _, s := range allStatuses {
		for _, ps := range paymentStatuses {
			t.Run(s.String()+" "+ps.String(), func(t *testing.T) {
				o := newTestOrder(t, s, ps)

				o.Finalize()
				assert.Equal(t, order.Finalized, o.Status())

				o.Finalize()
				assert.Equal(t, order.Finalized, o.Status())
				assert.Equal(t, ps, o.PaymentStatus())
			})
		}
	}
}

func TestOrder_SetPaymentStatus(t *testing.T) {
	t.Run("should replace payment status without touching status", func(t *testing.T) {
		o := newTestOrder(t, order.Ready, order.PaymentPending)

		require.NoError(t, o.SetPaymentStatus(order.PaymentRejected))
		assert.Equal(t, order.PaymentRejected, o.PaymentStatus())
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.SetPaymentStatus(order.PaymentApproved))
		assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject invalid payment status", func(t *testing.T) {
		o := newTestOrder(t, order.Received, order.PaymentApproved)

		err := o.SetPaymentStatus(order.PaymentUnknown)

		require.Error(t, err)
		assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
	})
}
