package clientrepo

import (
	"context"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/core/domain/model/client"
)

const resource = "cliente"

// RestClientRepository implements ClientRepository over the collaborator's
// REST endpoints.
type RestClientRepository struct {
	api *restapi.Client
}

// NewRestClientRepository creates a client repository on the shared transport.
func NewRestClientRepository(api *restapi.Client) *RestClientRepository {
	return &RestClientRepository{api: api}
}

// List retrieves all clients via GET /cliente/get.
func (r *RestClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.api.List(ctx, resource, "/cliente/get", &dtos); err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

// Create persists a new client via POST /cliente/add.
func (r *RestClientRepository) Create(ctx context.Context, c *client.Client) (*client.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var created ClientDTO
	if err := r.api.Create(ctx, resource, "/cliente/add", fromDomain(c), &created); err != nil {
		return nil, err
	}
	return toDomain(created)
}

// Update replaces the stored client via PUT /cliente/update/{id}.
func (r *RestClientRepository) Update(ctx context.Context, id string, c *client.Client) (*client.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// seed with the request so an empty response body still yields the
	// updated entity
	updated := fromDomain(c)
	updated.ID = id
	if err := r.api.Update(ctx, resource, "update", "/cliente/update/"+id, fromDomain(c), &updated); err != nil {
		return nil, err
	}
	return toDomain(updated)
}

// Delete removes the client via DELETE /cliente/delete/{id}.
func (r *RestClientRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, resource, "/cliente/delete/"+id)
}
