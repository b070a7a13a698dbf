// Package client provides the Client entity: a buyer referenced by orders.
package client

import (
	"errors"

	"backoffice/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Client holds the identity and contact data of a buyer. Only the display
// name is required; contact fields and the tax identifier are free-form, as
// the collaborator performs no format validation either.
type Client struct {
	id    string
	name  string
	phone string
	email string
	taxID string

	isConstructed bool
}

// NewClient creates a Client without an identifier, ready to be sent to the
// collaborator's create endpoint, which assigns the id.
func NewClient(name, phone, email, taxID string) (*Client, error) {
	c := &Client{
		phone:         phone,
		email:         email,
		taxID:         taxID,
		isConstructed: true,
	}

	if err := c.setName(name); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from a collaborator response.
func RestoreClient(id, name, phone, email, taxID string) (*Client, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("client id")
	}

	c, err := NewClient(name, phone, email, taxID)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Client was built through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the collaborator-assigned identifier, empty for new clients.
func (c *Client) ID() string { return c.id }

// Name returns the display name.
func (c *Client) Name() string { return c.name }

// Phone returns the contact phone number.
func (c *Client) Phone() string { return c.phone }

// Email returns the contact email address.
func (c *Client) Email() string { return c.email }

// TaxID returns the CNPJ tax identifier.
func (c *Client) TaxID() string { return c.taxID }

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
