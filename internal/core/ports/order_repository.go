package ports

import (
	"context"

	"backoffice/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for orders against the remote
// collaborator. List responses must be arrays; a non-array payload is a
// shape error and no partial result is returned.
//
// The status update is split across two operations because the collaborator
// models returns and cancellations as a separate resource with its own side
// effects. The caller (the update-status command handler) decides the route
// based on Status.IsReturnFlow; the repository performs no routing of its
// own.
type OrderRepository interface {
	// List retrieves all orders. No pagination or filtering is offered by
	// the collaborator.
	List(ctx context.Context) ([]*order.Order, error)

	// Create persists a new order for the given client and product
	// references and returns the stored order with its assigned id.
	Create(ctx context.Context, o *order.Order) (*order.Order, error)

	// UpdateStatus sends a forward-path (or delivery-problem) status change
	// to the standard status endpoint.
	UpdateStatus(ctx context.Context, id int64, status order.Status) error

	// UpdateReturnStatus sends a return/cancellation status change to the
	// dedicated devolucao endpoint.
	UpdateReturnStatus(ctx context.Context, id int64, status order.Status) error

	// Delete removes the order unconditionally; no status guard is applied
	// on either side.
	Delete(ctx context.Context, id int64) error
}
