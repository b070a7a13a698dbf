package ports

import (
	"context"

	"backoffice/internal/core/domain/model/supplier"
)

// SupplierRepository is the uniform CRUD contract for suppliers.
type SupplierRepository interface {
	// List retrieves all suppliers.
	List(ctx context.Context) ([]*supplier.Supplier, error)

	// Create persists a new supplier and returns it with its assigned id.
	Create(ctx context.Context, s *supplier.Supplier) (*supplier.Supplier, error)

	// Update replaces the stored supplier and returns the updated entity.
	Update(ctx context.Context, id string, s *supplier.Supplier) (*supplier.Supplier, error)

	// Delete removes the supplier.
	Delete(ctx context.Context, id string) error
}
