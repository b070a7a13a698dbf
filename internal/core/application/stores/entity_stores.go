package stores

import (
	"strconv"

	"backoffice/internal/core/domain/model/client"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/model/supplier"
)

// Concrete store types for each entity collection.
type (
	ClientStore   = Store[*client.Client]
	SupplierStore = Store[*supplier.Supplier]
	ProductStore  = Store[*product.Product]
	OrderStore    = Store[*order.Order]
)

// NewClientStore creates the client collection keyed by client id.
func NewClientStore() *ClientStore {
	return NewStore(func(c *client.Client) string { return c.ID() })
}

// NewSupplierStore creates the supplier collection keyed by supplier id.
func NewSupplierStore() *SupplierStore {
	return NewStore(func(s *supplier.Supplier) string { return s.ID() })
}

// NewProductStore creates the product collection keyed by product id.
func NewProductStore() *ProductStore {
	return NewStore(func(p *product.Product) string { return p.ID() })
}

// NewOrderStore creates the order collection keyed by the numeric order id.
func NewOrderStore() *OrderStore {
	return NewStore(func(o *order.Order) string { return OrderKey(o.ID()) })
}

// OrderKey renders a numeric order id as a store key.
func OrderKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
