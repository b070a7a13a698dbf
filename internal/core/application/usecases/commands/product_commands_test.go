package commands_test

import (
	"context"
	"testing"

	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand(t *testing.T) {
	t.Run("supplier reference is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand("Caixa", "", mustMoney(t, 10.5), 100, "")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject a negative available quantity", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("Caixa", "", mustMoney(t, 10.5), -1, "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero available quantity is allowed", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("Caixa", "", mustMoney(t, 10.5), 0, "")

		assert.NoError(t, err)
	})
}

func TestProductCommandHandler(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*MockProductRepository, *stores.ProductStore, commands.ProductCommandHandler) {
		repo := &MockProductRepository{}
		store := stores.NewProductStore()
		return repo, store, commands.NewProductCommandHandler(
			commands.ProductAccess{Repo: repo, Store: store})
	}

	t.Run("create upserts the store after confirmation", func(t *testing.T) {
		repo, store, handler := newFixture()
		repo.On("Create", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.Name() == "Caixa" && p.SupplierID() == "F1"
		})).Return(restoreProduct(t, "P1", "Caixa", 10.5, 100), nil)

		cmd, err := commands.NewCreateProductCommand("Caixa", "", mustMoney(t, 10.5), 100, "F1")
		require.NoError(t, err)

		created, err := handler.HandleCreate(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "P1", created.ID())
		_, ok := store.Get("P1")
		assert.True(t, ok)
	})

	t.Run("price update does not touch existing order values", func(t *testing.T) {
		repo, store, handler := newFixture()
		orderStore := stores.NewOrderStore()
		orderStore.Upsert(restoreOrder(t, 42, "PEDIDO_REALIZADO"))

		repo.On("Update", ctx, "P1", mock.Anything).
			Return(restoreProduct(t, "P1", "Caixa", 999, 100), nil)

		cmd, err := commands.NewUpdateProductCommand("P1", "Caixa", "", mustMoney(t, 999), 100, "")
		require.NoError(t, err)

		_, err = handler.HandleUpdate(ctx, cmd)
		require.NoError(t, err)

		got, ok := store.Get("P1")
		require.True(t, ok)
		assert.Equal(t, float64(999), got.Price().Amount())

		// the placed order keeps the value computed at creation time
		kept, ok := orderStore.Get(stores.OrderKey(42))
		require.True(t, ok)
		assert.Equal(t, float64(600), kept.Value().Amount())
	})
}
