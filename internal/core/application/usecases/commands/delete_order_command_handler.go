package commands

import (
	"context"

	"backoffice/internal/core/application/stores"
)

// DeleteOrderCommandHandler handles order removal. A single delete request is
// issued per command; a failed delete is reported as-is and never retried, so
// the collaborator is not hit twice for the same user action.
type DeleteOrderCommandHandler struct {
	orders OrderAccess
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(orders OrderAccess) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle processes the removal command. The store entry is dropped only
// after the collaborator confirmed the deletion.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.orders.Repo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	h.orders.Store.Remove(stores.OrderKey(cmd.OrderID()))
	return nil
}
