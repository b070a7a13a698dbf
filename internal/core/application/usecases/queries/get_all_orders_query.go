// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Each handler refreshes the corresponding in-memory store from the
// collaborator and returns denormalized read models for display.
package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order together with the display names of
// its client and product relations.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("#%d %s x%d -> %s\n", o.ID, o.ProductName, o.Quantity, o.StatusLabel)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the order read model.
//
// ClientName and ProductName are resolved from the local catalog stores; when
// a relation is unknown locally the name falls back to the raw identifier so
// the row stays renderable. Status carries the wire token, StatusLabel its
// derived human-readable form.
type GetAllOrdersQueryResponse struct {
	ID          int64
	ClientID    string
	ClientName  string
	ProductID   string
	ProductName string
	Quantity    int
	Value       float64
	InvoiceRef  string
	Status      string
	StatusLabel string
	Terminal    bool
}
