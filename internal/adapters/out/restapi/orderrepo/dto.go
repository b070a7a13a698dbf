// Package orderrepo implements the order repository against the
// collaborator's /pedido endpoints.
//
// Status changes are split across two endpoints on the collaborator side:
// the standard status endpoint and the dedicated devolucao endpoint for
// returns and cancellations. This package exposes both as separate
// operations and leaves the routing decision to the caller.
package orderrepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderDTO is the collaborator's wire shape for an order. Client and product
// relations arrive either as flat ids or as nested objects; both are
// flattened to the foreign key on ingest.
type OrderDTO struct {
	ID         int64      `json:"id,omitempty"`
	ClienteID  string     `json:"clienteId,omitempty"`
	Cliente    *EntityRef `json:"cliente,omitempty"`
	ProdutoID  string     `json:"produtoId,omitempty"`
	Produto    *EntityRef `json:"produto,omitempty"`
	NotaFiscal string     `json:"notaFiscal,omitempty"`
	Valor      float64    `json:"valor"`
	Qtd        int        `json:"qtd"`
	Status     string     `json:"statusPedido"`
}

// EntityRef is a nested relation carrying only the referenced id.
type EntityRef struct {
	ID string `json:"id"`
}

// StatusUpdateDTO is the body of both status update endpoints.
type StatusUpdateDTO struct {
	Status string `json:"statusPedido"`
}

func (dto OrderDTO) clientID() string {
	if dto.ClienteID != "" {
		return dto.ClienteID
	}
	if dto.Cliente != nil {
		return dto.Cliente.ID
	}
	return ""
}

func (dto OrderDTO) productID() string {
	if dto.ProdutoID != "" {
		return dto.ProdutoID
	}
	if dto.Produto != nil {
		return dto.Produto.ID
	}
	return ""
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID(),
		ClienteID:  o.ClientID(),
		ProdutoID:  o.ProductID(),
		NotaFiscal: o.InvoiceRef(),
		Valor:      o.Value().Amount(),
		Qtd:        o.Quantity(),
		Status:     o.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	value, err := kernel.NewMoney(dto.Valor)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.clientID(),
		dto.productID(),
		dto.Qtd,
		value,
		dto.NotaFiscal,
		order.Status(dto.Status),
	)
}
