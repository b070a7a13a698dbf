package orderrepo

import (
	"context"
	"fmt"

	"backoffice/internal/adapters/out/restapi"
	"backoffice/internal/core/domain/model/order"
)

const resource = "pedido"

// RestOrderRepository implements OrderRepository over the collaborator's
// REST endpoints.
type RestOrderRepository struct {
	api *restapi.Client
}

// NewRestOrderRepository creates an order repository on the shared transport.
func NewRestOrderRepository(api *restapi.Client) *RestOrderRepository {
	return &RestOrderRepository{api: api}
}

// List retrieves all orders via GET /pedido/get.
func (r *RestOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.api.List(ctx, resource, "/pedido/get", &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Create persists a new order via POST /pedido/add/{clienteId}/{produtoId}.
// The relations travel in the path; the body carries value, quantity and the
// initial status.
func (r *RestOrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/pedido/add/%s/%s", o.ClientID(), o.ProductID())

	var created OrderDTO
	if err := r.api.Create(ctx, resource, path, fromDomain(o), &created); err != nil {
		return nil, err
	}

	// some collaborator builds respond without the relations; restore them
	// from the request
	if created.clientID() == "" {
		created.ClienteID = o.ClientID()
	}
	if created.productID() == "" {
		created.ProdutoID = o.ProductID()
	}
	return toDomain(created)
}

// UpdateStatus sends a forward-path status change via
// PUT /pedido/update/status/{id}.
func (r *RestOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/pedido/update/status/%d", id)
	return r.api.Update(ctx, resource, "update_status", path, StatusUpdateDTO{Status: status.String()}, nil)
}

// UpdateReturnStatus sends a return or cancellation status change via
// PUT /pedido/update/status/devolucao/{id}.
func (r *RestOrderRepository) UpdateReturnStatus(ctx context.Context, id int64, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/pedido/update/status/devolucao/%d", id)
	return r.api.Update(ctx, resource, "update_status", path, StatusUpdateDTO{Status: status.String()}, nil)
}

// Delete removes the order via DELETE /pedido/delete/{id}. Exactly one
// request is issued regardless of outcome.
func (r *RestOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, resource, fmt.Sprintf("/pedido/delete/%d", id))
}
