package commands

import (
	"context"

	"backoffice/internal/core/application/stores"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// The handler owns the endpoint routing decision: transitions into a
// return-flow status (return in progress, returned, cancelled) go to the
// collaborator's dedicated devolucao endpoint, everything else to the
// standard status endpoint. Exactly one endpoint is called per command.
type UpdateOrderStatusCommandHandler struct {
	orders OrderAccess
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(orders OrderAccess) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orders: orders}
}

// Handle processes the status change command.
//
// When the order is present in the store, the transition is checked against
// the current status first: terminal orders reject every change before any
// network call. When the order is unknown locally, the change is sent as-is
// and the collaborator has the final word.
//
// The store is mutated only after the collaborator confirmed the update.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, known := h.orders.Store.Get(stores.OrderKey(cmd.OrderID()))
	if known {
		if _, err := current.Status().ChangeTo(cmd.Status()); err != nil {
			return err
		}
	}

	if err := h.send(ctx, cmd); err != nil {
		return err
	}

	if known {
		if err := current.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
		h.orders.Store.Upsert(current)
	}
	return nil
}

func (h UpdateOrderStatusCommandHandler) send(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if cmd.Status().IsReturnFlow() {
		return h.orders.Repo.UpdateReturnStatus(ctx, cmd.OrderID(), cmd.Status())
	}
	return h.orders.Repo.UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
}
