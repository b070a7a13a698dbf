package queries

import (
	"context"

	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/ports"
)

// GetAllClientsQueryHandler retrieves all clients and refreshes the client
// store with the result.
type GetAllClientsQueryHandler struct {
	repo  ports.ClientRepository
	store *stores.ClientStore
}

// NewGetAllClientsQueryHandler creates a handler for client retrieval.
func NewGetAllClientsQueryHandler(
	repo ports.ClientRepository,
	store *stores.ClientStore,
) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{repo: repo, store: store}
}

// Handle executes the query. On failure the store keeps its previous
// contents.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]GetAllClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	h.store.Replace(clients)

	responses := make([]GetAllClientsQueryResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, GetAllClientsQueryResponse{
			ID:    c.ID(),
			Name:  c.Name(),
			Phone: c.Phone(),
			Email: c.Email(),
			TaxID: c.TaxID(),
		})
	}
	return responses, nil
}
