// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validate locally, call the
// persistence collaborator, and mutate the in-memory store only after the
// collaborator confirmed the result.
//
// There is no transaction management here. The collaborator is a remote REST
// service and offers no transactional boundary, so each handler performs a
// single confirmed write followed by a store mutation.
package commands

import (
	"backoffice/internal/core/application/stores"
	"backoffice/internal/core/ports"
)

// Handler dependencies, grouped per aggregate. The repository reaches the
// collaborator; the store is the local source of truth the API reads from.
type (
	// ClientAccess bundles the client repository with its store.
	ClientAccess struct {
		Repo  ports.ClientRepository
		Store *stores.ClientStore
	}

	// SupplierAccess bundles the supplier repository with its store.
	SupplierAccess struct {
		Repo  ports.SupplierRepository
		Store *stores.SupplierStore
	}

	// ProductAccess bundles the product repository with its store.
	ProductAccess struct {
		Repo  ports.ProductRepository
		Store *stores.ProductStore
	}

	// OrderAccess bundles the order repository with its store.
	OrderAccess struct {
		Repo  ports.OrderRepository
		Store *stores.OrderStore
	}
)
