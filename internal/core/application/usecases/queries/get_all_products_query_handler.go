package queries

import (
	"context"

	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/ports"
)

// GetAllProductsQueryHandler retrieves all products, refreshes the product
// store and resolves supplier names from the supplier store.
type GetAllProductsQueryHandler struct {
	repo          ports.ProductRepository
	store         *stores.ProductStore
	supplierStore *stores.SupplierStore
}

// NewGetAllProductsQueryHandler creates a handler for product retrieval.
func NewGetAllProductsQueryHandler(
	repo ports.ProductRepository,
	store *stores.ProductStore,
	supplierStore *stores.SupplierStore,
) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{
		repo:          repo,
		store:         store,
		supplierStore: supplierStore,
	}
}

// Handle executes the query. On failure the store keeps its previous
// contents.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	h.store.Replace(products)

	responses := make([]GetAllProductsQueryResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, GetAllProductsQueryResponse{
			ID:           p.ID(),
			Name:         p.Name(),
			Description:  p.Description(),
			Price:        p.Price().Amount(),
			AvailableQty: p.AvailableQty(),
			SupplierID:   p.SupplierID(),
			SupplierName: h.supplierName(p.SupplierID()),
		})
	}
	return responses, nil
}

func (h GetAllProductsQueryHandler) supplierName(id string) string {
	if id == "" {
		return ""
	}
	if s, ok := h.supplierStore.Get(id); ok {
		return s.Name()
	}
	return ""
}
