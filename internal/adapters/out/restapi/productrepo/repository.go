package productrepo

import (
	"context"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/core/domain/model/product"
)

const resource = "produto"

// RestProductRepository implements ProductRepository over the collaborator's
// REST endpoints.
type RestProductRepository struct {
	api *restapi.Client
}

// NewRestProductRepository creates a product repository on the shared
// transport.
func NewRestProductRepository(api *restapi.Client) *RestProductRepository {
	return &RestProductRepository{api: api}
}

// List retrieves all products via GET /produto/get.
func (r *RestProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.api.List(ctx, resource, "/produto/get", &dtos); err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Create persists a new product via POST /produto/add.
func (r *RestProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var created ProductDTO
	if err := r.api.Create(ctx, resource, "/produto/add", fromDomain(p), &created); err != nil {
		return nil, err
	}
	return toDomain(created)
}

// Update replaces the stored product via PUT /produto/update/{id}.
func (r *RestProductRepository) Update(ctx context.Context, id string, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// seed with the request so an empty response body still yields the
	// updated entity
	updated := fromDomain(p)
	updated.ID = id
	if err := r.api.Update(ctx, resource, "update", "/produto/update/"+id, fromDomain(p), &updated); err != nil {
		return nil, err
	}
	return toDomain(updated)
}

// Delete removes the product via DELETE /produto/delete/{id}.
func (r *RestProductRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, resource, "/produto/delete/"+id)
}
