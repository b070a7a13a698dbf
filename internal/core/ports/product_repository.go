package ports

import (
	"context"

	"backoffice/internal/core/domain/model/product"
)

// ProductRepository is the uniform CRUD contract for products.
type ProductRepository interface {
	// List retrieves all products. Supplier relations are flattened to the
	// foreign key regardless of the shape the collaborator responded with.
	List(ctx context.Context) ([]*product.Product, error)

	// Create persists a new product and returns it with its assigned id.
	Create(ctx context.Context, p *product.Product) (*product.Product, error)

	// Update replaces the stored product and returns the updated entity.
	Update(ctx context.Context, id string, p *product.Product) (*product.Product, error)

	// Delete removes the product. No referential check against existing
	// orders is performed on either side.
	Delete(ctx context.Context, id string) error
}
