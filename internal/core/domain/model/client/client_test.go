package client_test

import (
	"testing"

	"backoffice/internal/core/domain/model/client"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should create client without id", func(t *testing.T) {
		c, err := client.NewClient("Transportes Ajax", "+55 11 98765-4321", "contato@ajax.example", "12.345.678/0001-90")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Empty(t, c.ID())
		assert.Equal(t, "Transportes Ajax", c.Name())
		assert.Equal(t, "+55 11 98765-4321", c.Phone())
		assert.Equal(t, "contato@ajax.example", c.Email())
		assert.Equal(t, "12.345.678/0001-90", c.TaxID())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := client.NewClient("", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("contact fields are free-form", func(t *testing.T) {
		// No checksum or format validation exists anywhere in the flow.
		c, err := client.NewClient("Ajax", "not-a-phone", "not-an-email", "not-a-cnpj")

		require.NoError(t, err)
		assert.Equal(t, "not-a-cnpj", c.TaxID())
	})
}

func TestRestoreClient(t *testing.T) {
	t.Run("should restore with id", func(t *testing.T) {
		c, err := client.RestoreClient("C1", "Ajax", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, "C1", c.ID())
	})

	t.Run("should require an id", func(t *testing.T) {
		_, err := client.RestoreClient("", "Ajax", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_Validate(t *testing.T) {
	var nilClient *client.Client
	require.ErrorIs(t, nilClient.Validate(), client.ErrClientIsNotConstructed)

	literal := &client.Client{}
	require.ErrorIs(t, literal.Validate(), client.ErrClientIsNotConstructed)
}
