package order_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in placed status", func(t *testing.T) {
		o, err := order.NewOrder("C1", "P1", 3, mustMoney(t, 600))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, "C1", o.ClientID())
		assert.Equal(t, "P1", o.ProductID())
		assert.Equal(t, 3, o.Quantity())
		assert.InDelta(t, 600, o.Value().Amount(), 0.0001)
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Empty(t, o.InvoiceRef())
	})

	t.Run("should reject empty client reference", func(t *testing.T) {
		_, err := order.NewOrder("", "P1", 1, mustMoney(t, 10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "clientId")
	})

	t.Run("should reject empty product reference", func(t *testing.T) {
		_, err := order.NewOrder("C1", "", 1, mustMoney(t, 10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productId")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1, -100} {
			_, err := order.NewOrder("C1", "P1", qty, mustMoney(t, 10))

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject unconstructed money value", func(t *testing.T) {
		var value kernel.Money

		_, err := order.NewOrder("C1", "P1", 1, value)

		require.Error(t, err)
	})

	t.Run("should join multiple validation failures", func(t *testing.T) {
		_, err := order.NewOrder("", "", 0, mustMoney(t, 10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "clientId")
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(42, "C1", "P1", 2, mustMoney(t, 400), "nf-0042.pdf", order.StatusInTransit)

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.StatusInTransit, o.Status())
		assert.Equal(t, "nf-0042.pdf", o.InvoiceRef())
	})

	t.Run("should require a positive identifier", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := order.RestoreOrder(id, "C1", "P1", 2, mustMoney(t, 400), "", order.StatusPlaced)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "order id")
		}
	})

	t.Run("should reject unknown status tokens", func(t *testing.T) {
		_, err := order.RestoreOrder(42, "C1", "P1", 2, mustMoney(t, 400), "", "LOST")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should transition transient orders", func(t *testing.T) {
		o, err := order.NewOrder("C1", "P1", 1, mustMoney(t, 10))
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.StatusConfirmed))
		assert.Equal(t, order.StatusConfirmed, o.Status())

		require.NoError(t, o.ChangeStatus(order.StatusCancelled))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should keep status on rejected transition", func(t *testing.T) {
		o, err := order.RestoreOrder(7, "C1", "P1", 1, mustMoney(t, 10), "", order.StatusDelivered)
		require.NoError(t, err)

		err = o.ChangeStatus(order.StatusReturnInProgress)

		require.Error(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("struct literal is invalid", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.RestoreOrder(7, "C1", "P1", 1, mustMoney(t, 10), "", order.StatusPlaced)
	require.NoError(t, err)
	b, err := order.RestoreOrder(7, "C2", "P2", 5, mustMoney(t, 50), "", order.StatusConfirmed)
	require.NoError(t, err)
	c, err := order.RestoreOrder(8, "C1", "P1", 1, mustMoney(t, 10), "", order.StatusPlaced)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
