package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/client"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrUpdateClientCommandIsNotConstructed = errors.New(
		"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
	)
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
)

// CreateClientCommand registers a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	email string
	taxID string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates the command. Only the name is required.
func NewCreateClientCommand(name, phone, email, taxID string) (CreateClientCommand, error) {
	if name == "" {
		return CreateClientCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateClientCommand{
		name:  name,
		phone: phone,
		email: email,
		taxID: taxID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Name() string  { return c.name }
func (c CreateClientCommand) Phone() string { return c.phone }
func (c CreateClientCommand) Email() string { return c.email }
func (c CreateClientCommand) TaxID() string { return c.taxID }

// UpdateClientCommand replaces a stored client's data.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID string
	name     string
	phone    string
	email    string
	taxID    string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates the command. The id and name are required.
func NewUpdateClientCommand(clientID, name, phone, email, taxID string) (UpdateClientCommand, error) {
	if err := errors.Join(
		requiredString("clientId", clientID),
		requiredString("name", name),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return UpdateClientCommand{
		clientID: clientID,
		name:     name,
		phone:    phone,
		email:    email,
		taxID:    taxID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() string { return c.clientID }
func (c UpdateClientCommand) Name() string     { return c.name }
func (c UpdateClientCommand) Phone() string    { return c.phone }
func (c UpdateClientCommand) Email() string    { return c.email }
func (c UpdateClientCommand) TaxID() string    { return c.taxID }

// DeleteClientCommand removes a client. No referential check against orders
// is performed on either side.
type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID string

	guard guard.ConstructorGuard
}

// NewDeleteClientCommand creates the command.
func NewDeleteClientCommand(clientID string) (DeleteClientCommand, error) {
	if clientID == "" {
		return DeleteClientCommand{}, errs.NewValueIsRequiredError("clientId")
	}

	return DeleteClientCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() string { return c.clientID }

// ClientCommandHandler handles all client write operations. The store is
// mutated only after the collaborator confirmed each result.
type ClientCommandHandler struct {
	clients ClientAccess
}

// NewClientCommandHandler creates a handler for client writes.
func NewClientCommandHandler(clients ClientAccess) ClientCommandHandler {
	return ClientCommandHandler{clients: clients}
}

// HandleCreate registers the client and returns it with its assigned id.
func (h ClientCommandHandler) HandleCreate(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newClient, err := client.NewClient(cmd.Name(), cmd.Phone(), cmd.Email(), cmd.TaxID())
	if err != nil {
		return nil, err
	}

	created, err := h.clients.Repo.Create(ctx, newClient)
	if err != nil {
		return nil, err
	}

	h.clients.Store.Upsert(created)
	return created, nil
}

// HandleUpdate replaces the stored client and returns the updated entity.
func (h ClientCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(cmd.Name(), cmd.Phone(), cmd.Email(), cmd.TaxID())
	if err != nil {
		return nil, err
	}

	updated, err := h.clients.Repo.Update(ctx, cmd.ClientID(), c)
	if err != nil {
		return nil, err
	}

	h.clients.Store.Upsert(updated)
	return updated, nil
}

// HandleDelete removes the client.
func (h ClientCommandHandler) HandleDelete(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.clients.Repo.Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	h.clients.Store.Remove(cmd.ClientID())
	return nil
}

func requiredString(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
