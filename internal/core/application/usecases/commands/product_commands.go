package commands

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateProductCommand registers a new catalog item. The supplier reference
// is optional; price and available quantity must be non-negative.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name         string
	description  string
	price        kernel.Money
	availableQty int
	supplierID   string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates the command.
func NewCreateProductCommand(
	name, description string,
	price kernel.Money,
	availableQty int,
	supplierID string,
) (CreateProductCommand, error) {
	if err := errors.Join(
		requiredString("name", name),
		price.Validate(),
		nonNegativeQty(availableQty),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:         name,
		description:  description,
		price:        price,
		availableQty: availableQty,
		supplierID:   supplierID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string        { return c.name }
func (c CreateProductCommand) Description() string { return c.description }
func (c CreateProductCommand) Price() kernel.Money { return c.price }
func (c CreateProductCommand) AvailableQty() int   { return c.availableQty }
func (c CreateProductCommand) SupplierID() string  { return c.supplierID }

// UpdateProductCommand replaces a stored product's data. Price and available
// quantity are independently editable; orders already placed keep the value
// computed at their creation.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID    string
	name         string
	description  string
	price        kernel.Money
	availableQty int
	supplierID   string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates the command. The id and name are required.
func NewUpdateProductCommand(
	productID, name, description string,
	price kernel.Money,
	availableQty int,
	supplierID string,
) (UpdateProductCommand, error) {
	if err := errors.Join(
		requiredString("productId", productID),
		requiredString("name", name),
		price.Validate(),
		nonNegativeQty(availableQty),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:    productID,
		name:         name,
		description:  description,
		price:        price,
		availableQty: availableQty,
		supplierID:   supplierID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() string   { return c.productID }
func (c UpdateProductCommand) Name() string        { return c.name }
func (c UpdateProductCommand) Description() string { return c.description }
func (c UpdateProductCommand) Price() kernel.Money { return c.price }
func (c UpdateProductCommand) AvailableQty() int   { return c.availableQty }
func (c UpdateProductCommand) SupplierID() string  { return c.supplierID }

// DeleteProductCommand removes a product.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates the command.
func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	if productID == "" {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() string { return c.productID }

// ProductCommandHandler handles all product write operations.
type ProductCommandHandler struct {
	products ProductAccess
}

// NewProductCommandHandler creates a handler for product writes.
func NewProductCommandHandler(products ProductAccess) ProductCommandHandler {
	return ProductCommandHandler{products: products}
}

// HandleCreate registers the product and returns it with its assigned id.
func (h ProductCommandHandler) HandleCreate(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newProduct, err := product.NewProduct(
		cmd.Name(), cmd.Description(), cmd.Price(), cmd.AvailableQty(), cmd.SupplierID())
	if err != nil {
		return nil, err
	}

	created, err := h.products.Repo.Create(ctx, newProduct)
	if err != nil {
		return nil, err
	}

	h.products.Store.Upsert(created)
	return created, nil
}

// HandleUpdate replaces the stored product and returns the updated entity.
func (h ProductCommandHandler) HandleUpdate(
	ctx context.Context,
	cmd UpdateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(
		cmd.Name(), cmd.Description(), cmd.Price(), cmd.AvailableQty(), cmd.SupplierID())
	if err != nil {
		return nil, err
	}

	updated, err := h.products.Repo.Update(ctx, cmd.ProductID(), p)
	if err != nil {
		return nil, err
	}

	h.products.Store.Upsert(updated)
	return updated, nil
}

// HandleDelete removes the product.
func (h ProductCommandHandler) HandleDelete(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.products.Repo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	h.products.Store.Remove(cmd.ProductID())
	return nil
}

func nonNegativeQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQty",
			fmt.Errorf("%d is negative", qty))
	}
	return nil
}
