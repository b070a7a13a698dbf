package queries

import (
	"context"

	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves all orders from the collaborator,
// refreshes the order store and denormalizes relation names from the catalog
// stores.
//
// On a collaborator or shape failure the store keeps its previous contents;
// a malformed response never replaces good data with a partial result.
type GetAllOrdersQueryHandler struct {
	repo         ports.OrderRepository
	orderStore   *stores.OrderStore
	clientStore  *stores.ClientStore
	productStore *stores.ProductStore
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval.
func NewGetAllOrdersQueryHandler(
	repo ports.OrderRepository,
	orderStore *stores.OrderStore,
	clientStore *stores.ClientStore,
	productStore *stores.ProductStore,
) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		repo:         repo,
		orderStore:   orderStore,
		clientStore:  clientStore,
		productStore: productStore,
	}
}

// Handle executes the query. The order store is replaced with the
// collaborator's result before the read models are built.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	h.orderStore.Replace(orders)

	responses := make([]GetAllOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, GetAllOrdersQueryResponse{
			ID:          o.ID(),
			ClientID:    o.ClientID(),
			ClientName:  h.clientName(o.ClientID()),
			ProductID:   o.ProductID(),
			ProductName: h.productName(o.ProductID()),
			Quantity:    o.Quantity(),
			Value:       o.Value().Amount(),
			InvoiceRef:  o.InvoiceRef(),
			Status:      o.Status().String(),
			StatusLabel: o.Status().DisplayLabel(),
			Terminal:    o.Status().IsTerminal(),
		})
	}
	return responses, nil
}

func (h GetAllOrdersQueryHandler) clientName(id string) string {
	if c, ok := h.clientStore.Get(id); ok {
		return c.Name()
	}
	return id
}

func (h GetAllOrdersQueryHandler) productName(id string) string {
	if p, ok := h.productStore.Get(id); ok {
		return p.Name()
	}
	return id
}
