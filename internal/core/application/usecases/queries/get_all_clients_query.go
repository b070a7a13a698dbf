package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery retrieves every registered client.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query to retrieve all clients.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// GetAllClientsQueryResponse is the client read model.
type GetAllClientsQueryResponse struct {
	ID    string
	Name  string
	Phone string
	Email string
	TaxID string
}
