package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateSupplierCommandIsNotConstructed = errors.New(
		"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
	)
	ErrUpdateSupplierCommandIsNotConstructed = errors.New(
		"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
	)
	ErrDeleteSupplierCommandIsNotConstructed = errors.New(
		"DeleteSupplierCommand must be created via NewDeleteSupplierCommand constructor",
	)
)

// CreateSupplierCommand registers a new supplier. New suppliers start active.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	name        string
	phone       string
	email       string
	serviceType string

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates the command. Only the name is required.
func NewCreateSupplierCommand(name, phone, email, serviceType string) (CreateSupplierCommand, error) {
	if name == "" {
		return CreateSupplierCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateSupplierCommand{
		name:        name,
		phone:       phone,
		email:       email,
		serviceType: serviceType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

func (c CreateSupplierCommand) Name() string        { return c.name }
func (c CreateSupplierCommand) Phone() string       { return c.phone }
func (c CreateSupplierCommand) Email() string       { return c.email }
func (c CreateSupplierCommand) ServiceType() string { return c.serviceType }

// UpdateSupplierCommand replaces a stored supplier's data, including its
// active flag.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID  string
	name        string
	phone       string
	email       string
	serviceType string
	active      bool

	guard guard.ConstructorGuard
}

// NewUpdateSupplierCommand creates the command. The id and name are required.
func NewUpdateSupplierCommand(
	supplierID, name, phone, email, serviceType string,
	active bool,
) (UpdateSupplierCommand, error) {
	if err := errors.Join(
		requiredString("supplierId", supplierID),
		requiredString("name", name),
	); err != nil {
		return UpdateSupplierCommand{}, err
	}

	return UpdateSupplierCommand{
		supplierID:  supplierID,
		name:        name,
		phone:       phone,
		email:       email,
		serviceType: serviceType,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

func (c UpdateSupplierCommand) SupplierID() string  { return c.supplierID }
func (c UpdateSupplierCommand) Name() string        { return c.name }
func (c UpdateSupplierCommand) Phone() string       { return c.phone }
func (c UpdateSupplierCommand) Email() string       { return c.email }
func (c UpdateSupplierCommand) ServiceType() string { return c.serviceType }
func (c UpdateSupplierCommand) Active() bool        { return c.active }

// DeleteSupplierCommand removes a supplier.
type DeleteSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID string

	guard guard.ConstructorGuard
}

// NewDeleteSupplierCommand creates the command.
func NewDeleteSupplierCommand(supplierID string) (DeleteSupplierCommand, error) {
	if supplierID == "" {
		return DeleteSupplierCommand{}, errs.NewValueIsRequiredError("supplierId")
	}

	return DeleteSupplierCommand{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteSupplierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSupplierCommandIsNotConstructed)
}

func (c DeleteSupplierCommand) SupplierID() string { return c.supplierID }

// SupplierCommandHandler handles all supplier write operations.
type SupplierCommandHandler struct {
	suppliers SupplierAccess
}

// NewSupplierCommandHandler creates a handler for supplier writes.
func NewSupplierCommandHandler(suppliers SupplierAccess) SupplierCommandHandler {
	return SupplierCommandHandler{suppliers: suppliers}
}

// HandleCreate registers the supplier and returns it with its assigned id.
func (h SupplierCommandHandler) HandleCreate(
	ctx context.Context,
	cmd CreateSupplierCommand,
) (*supplier.Supplier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newSupplier, err := supplier.NewSupplier(cmd.Name(), cmd.Phone(), cmd.Email(), cmd.ServiceType())
	if err != nil {
		return nil, err
	}

	created, err := h.suppliers.Repo.Create(ctx, newSupplier)
	if err != nil {
		return nil, err
	}

	h.suppliers.Store.Upsert(created)
	return created, nil
}

// HandleUpdate replaces the stored supplier and returns the updated entity.
func (h SupplierCommandHandler) HandleUpdate(
	ctx context.Context,
	cmd UpdateSupplierCommand,
) (*supplier.Supplier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := supplier.NewSupplier(cmd.Name(), cmd.Phone(), cmd.Email(), cmd.ServiceType())
	if err != nil {
		return nil, err
	}
	if !cmd.Active() {
		s.Deactivate()
	}

	updated, err := h.suppliers.Repo.Update(ctx, cmd.SupplierID(), s)
	if err != nil {
		return nil, err
	}

	h.suppliers.Store.Upsert(updated)
	return updated, nil
}

// HandleDelete removes the supplier.
func (h SupplierCommandHandler) HandleDelete(ctx context.Context, cmd DeleteSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.suppliers.Repo.Delete(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	h.suppliers.Store.Remove(cmd.SupplierID())
	return nil
}
