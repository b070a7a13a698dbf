package commands

import (
	"context"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
//
// The order value is computed here as unit price times quantity. The price is
// read from the product store; on a miss the product list is refreshed from
// the collaborator once before the reference is declared unknown.
type CreateOrderCommandHandler struct {
	orders   OrderAccess
	products ProductAccess
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(orders OrderAccess, products ProductAccess) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:   orders,
		products: products,
	}
}

// Handle processes the order placement command.
//
// The new order starts in the placed status, the collaborator assigns the id,
// and the order store is updated only after the collaborator confirmed the
// creation. Returns the created order with its assigned identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := h.resolveProduct(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.ClientID(),
		cmd.ProductID(),
		cmd.Quantity(),
		p.Price().MultiplyQty(cmd.Quantity()),
	)
	if err != nil {
		return nil, err
	}

	created, err := h.orders.Repo.Create(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	h.orders.Store.Upsert(created)
	return created, nil
}

func (h CreateOrderCommandHandler) resolveProduct(ctx context.Context, productID string) (*product.Product, error) {
	if p, ok := h.products.Store.Get(productID); ok {
		return p, nil
	}

	// stale store, refresh once from the collaborator
	products, err := h.products.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	h.products.Store.Replace(products)

	if p, ok := h.products.Store.Get(productID); ok {
		return p, nil
	}
	return nil, errs.NewObjectNotFoundError("productId", productID)
}
