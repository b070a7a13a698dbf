// Package clientrepo implements the client repository against the
// collaborator's /cliente endpoints, handling the conversion between the
// Client entity and its Portuguese wire representation.
package clientrepo

import (
	"backoffice/internal/core/domain/model/client"
)

// ClientDTO is the collaborator's wire shape for a client.
type ClientDTO struct {
	ID       string `json:"id,omitempty"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CNPJ     string `json:"cnpj"`
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:       c.ID(),
		Nome:     c.Name(),
		Telefone: c.Phone(),
		Email:    c.Email(),
		CNPJ:     c.TaxID(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(dto.ID, dto.Nome, dto.Telefone, dto.Email, dto.CNPJ)
}
