package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrGetAllSuppliersQueryIsNotConstructed = errors.New(
	"GetAllSuppliersQuery must be created via NewGetAllSuppliersQuery constructor",
)

// GetAllSuppliersQuery retrieves every registered supplier.
type GetAllSuppliersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSuppliersQuery creates a query to retrieve all suppliers.
func NewGetAllSuppliersQuery() GetAllSuppliersQuery {
	return GetAllSuppliersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSuppliersQueryIsNotConstructed)
}

// GetAllSuppliersQueryResponse is the supplier read model.
type GetAllSuppliersQueryResponse struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	ServiceType string
	Active      bool
}
