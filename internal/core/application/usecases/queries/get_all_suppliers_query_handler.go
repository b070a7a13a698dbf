package queries

import (
	"context"

	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/ports"
)

// GetAllSuppliersQueryHandler retrieves all suppliers and refreshes the
// supplier store with the result.
type GetAllSuppliersQueryHandler struct {
	repo  ports.SupplierRepository
	store *stores.SupplierStore
}

// NewGetAllSuppliersQueryHandler creates a handler for supplier retrieval.
func NewGetAllSuppliersQueryHandler(
	repo ports.SupplierRepository,
	store *stores.SupplierStore,
) GetAllSuppliersQueryHandler {
	return GetAllSuppliersQueryHandler{repo: repo, store: store}
}

// Handle executes the query. On failure the store keeps its previous
// contents.
func (h GetAllSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSuppliersQuery,
) ([]GetAllSuppliersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	suppliers, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	h.store.Replace(suppliers)

	responses := make([]GetAllSuppliersQueryResponse, 0, len(suppliers))
	for _, s := range suppliers {
		responses = append(responses, GetAllSuppliersQueryResponse{
			ID:          s.ID(),
			Name:        s.Name(),
			Phone:       s.Phone(),
			Email:       s.Email(),
			ServiceType: s.ServiceType(),
			Active:      s.Active(),
		})
	}
	return responses, nil
}
