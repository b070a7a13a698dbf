package supplierrepo

import (
	"context"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/core/domain/model/supplier"
)

const resource = "fornecedor"

// RestSupplierRepository implements SupplierRepository over the
// collaborator's REST endpoints.
type RestSupplierRepository struct {
	api *restapi.Client
}

// NewRestSupplierRepository creates a supplier repository on the shared
// transport.
func NewRestSupplierRepository(api *restapi.Client) *RestSupplierRepository {
	return &RestSupplierRepository{api: api}
}

// List retrieves all suppliers via GET /fornecedor/get.
func (r *RestSupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	var dtos []SupplierDTO
	if err := r.api.List(ctx, resource, "/fornecedor/get", &dtos); err != nil {
		return nil, err
	}

	suppliers := make([]*supplier.Supplier, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

// Create persists a new supplier via POST /fornecedor/add.
func (r *RestSupplierRepository) Create(ctx context.Context, s *supplier.Supplier) (*supplier.Supplier, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var created SupplierDTO
	if err := r.api.Create(ctx, resource, "/fornecedor/add", fromDomain(s), &created); err != nil {
		return nil, err
	}
	return toDomain(created)
}

// Update replaces the stored supplier via PUT /fornecedor/update/{id}.
func (r *RestSupplierRepository) Update(ctx context.Context, id string, s *supplier.Supplier) (*supplier.Supplier, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	// seed with the request so an empty response body still yields the
	// updated entity
	updated := fromDomain(s)
	updated.ID = id
	if err := r.api.Update(ctx, resource, "update", "/fornecedor/update/"+id, fromDomain(s), &updated); err != nil {
		return nil, err
	}
	return toDomain(updated)
}

// Delete removes the supplier via DELETE /fornecedor/delete/{id}.
func (r *RestSupplierRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, resource, "/fornecedor/delete/"+id)
}
