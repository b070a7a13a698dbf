package commands

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a client
// and product pair.
//
// The empty-reference checks in the constructor are the local precondition
// enforced before any network call: a missing client or product selection is
// rejected here with a field-level error and the collaborator is never
// contacted.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("C1", "P1", 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID  string
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both references are present and the quantity is positive.
func NewCreateOrderCommand(clientID, productID string, quantity int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() string {
	return c.clientID
}

// ProductID returns the ordered product's identifier.
func (c CreateOrderCommand) ProductID() string {
	return c.productID
}

// Quantity returns the ordered amount.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setClientID(clientID string) error {
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientId")
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
