package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves every catalog product.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse is the product read model. SupplierName is
// resolved from the supplier store and empty when the product has no
// registered vendor or the vendor is unknown locally.
type GetAllProductsQueryResponse struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	AvailableQty int
	SupplierID   string
	SupplierName string
}
