// Package productrepo implements the product repository against the
// collaborator's /produto endpoints.
//
// Product payloads carry the supplier relation in one of two historical
// shapes, a flat fornecedorId or a nested fornecedor object. Both are
// accepted on ingest and flattened to the foreign key; outbound payloads
// always use the flat form.
package productrepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductDTO is the collaborator's wire shape for a product.
type ProductDTO struct {
	ID                   string         `json:"id,omitempty"`
	Nome                 string         `json:"nome"`
	Descricao            string         `json:"descricao"`
	Preco                float64        `json:"preco"`
	QuantidadeDisponivel int            `json:"quantidadeDisponivel"`
	FornecedorID         string         `json:"fornecedorId,omitempty"`
	Fornecedor           *FornecedorRef `json:"fornecedor,omitempty"`
}

// FornecedorRef is the nested supplier reference some collaborator responses
// embed instead of the flat fornecedorId.
type FornecedorRef struct {
	ID string `json:"id"`
}

func (dto ProductDTO) supplierID() string {
	if dto.FornecedorID != "" {
		return dto.FornecedorID
	}
	if dto.Fornecedor != nil {
		return dto.Fornecedor.ID
	}
	return ""
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                   p.ID(),
		Nome:                 p.Name(),
		Descricao:            p.Description(),
		Preco:                p.Price().Amount(),
		QuantidadeDisponivel: p.AvailableQty(),
		FornecedorID:         p.SupplierID(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Preco)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		dto.ID,
		dto.Nome,
		dto.Descricao,
		price,
		dto.QuantidadeDisponivel,
		dto.supplierID(),
	)
}
