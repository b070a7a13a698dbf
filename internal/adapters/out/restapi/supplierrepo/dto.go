// Package supplierrepo implements the supplier repository against the
// collaborator's /fornecedor endpoints.
package supplierrepo

import (
	"backoffice/internal/core/domain/model/supplier"
)

// SupplierDTO is the collaborator's wire shape for a supplier.
type SupplierDTO struct {
	ID          string `json:"id,omitempty"`
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	TipoServico string `json:"tipoServico"`
	Ativo       bool   `json:"ativo"`
}

func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:          s.ID(),
		Nome:        s.Name(),
		Telefone:    s.Phone(),
		Email:       s.Email(),
		TipoServico: s.ServiceType(),
		Ativo:       s.Active(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	return supplier.RestoreSupplier(dto.ID, dto.Nome, dto.Telefone, dto.Email, dto.TipoServico, dto.Ativo)
}
