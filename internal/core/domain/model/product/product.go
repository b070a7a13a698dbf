// Package product provides the Product entity: a catalog item referenced by
// orders and optionally linked to a supplier.
package product

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product holds a catalog item: name, description, non-negative price,
// non-negative available quantity, and an optional supplier reference.
//
// The supplier relation is stored as a foreign key only. Collaborator
// responses historically carried either a fornecedorId or a nested
// fornecedor object; both shapes are flattened to the id on ingest and the
// full supplier is resolved through an explicit lookup.
//
// Price and available quantity are independently editable; creating an order
// does not decrement stock.
type Product struct {
	id           string
	name         string
	description  string
	price        kernel.Money
	availableQty int
	supplierID   string

	isConstructed bool
}

// NewProduct creates a Product without an identifier. The supplierID may be
// empty for products without a registered vendor.
func NewProduct(name, description string, price kernel.Money, availableQty int, supplierID string) (*Product, error) {
	p := &Product{
		description:   description,
		supplierID:    supplierID,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setAvailableQty(availableQty),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from a collaborator response.
func RestoreProduct(
	id, name, description string,
	price kernel.Money,
	availableQty int,
	supplierID string,
) (*Product, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("product id")
	}

	p, err := NewProduct(name, description, price, availableQty, supplierID)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the collaborator-assigned identifier, empty for new products.
func (p *Product) ID() string { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the free-text description.
func (p *Product) Description() string { return p.description }

// Price returns the unit price.
func (p *Product) Price() kernel.Money { return p.price }

// AvailableQty returns the quantity in stock.
func (p *Product) AvailableQty() int { return p.availableQty }

// SupplierID returns the referenced supplier's identifier, empty when the
// product has no registered vendor.
func (p *Product) SupplierID() string { return p.supplierID }

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQty",
			fmt.Errorf("%d is negative", qty))
	}
	p.availableQty = qty
	return nil
}
