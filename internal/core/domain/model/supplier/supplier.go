// Package supplier provides the Supplier entity: a vendor referenced by
// products.
package supplier

import (
	"errors"

	"backoffice/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier")

// Supplier holds the identity, contact data and service category of a
// vendor. The service type is free text; the collaborator imposes no fixed
// enumeration.
type Supplier struct {
	id          string
	name        string
	phone       string
	email       string
	serviceType string
	active      bool

	isConstructed bool
}

// NewSupplier creates a Supplier without an identifier. New suppliers start
// active; the collaborator assigns the id on creation.
func NewSupplier(name, phone, email, serviceType string) (*Supplier, error) {
	s := &Supplier{
		phone:         phone,
		email:         email,
		serviceType:   serviceType,
		active:        true,
		isConstructed: true,
	}

	if err := s.setName(name); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSupplier reconstructs a Supplier from a collaborator response.
func RestoreSupplier(id, name, phone, email, serviceType string, active bool) (*Supplier, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("supplier id")
	}

	s, err := NewSupplier(name, phone, email, serviceType)
	if err != nil {
		return nil, err
	}

	s.id = id
	s.active = active
	return s, nil
}

// Validate ensures the Supplier was built through a constructor.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the collaborator-assigned identifier, empty for new suppliers.
func (s *Supplier) ID() string { return s.id }

// Name returns the display name.
func (s *Supplier) Name() string { return s.name }

// Phone returns the contact phone number.
func (s *Supplier) Phone() string { return s.phone }

// Email returns the contact email address.
func (s *Supplier) Email() string { return s.email }

// ServiceType returns the service category.
func (s *Supplier) ServiceType() string { return s.serviceType }

// Active reports whether the supplier is currently active.
func (s *Supplier) Active() bool { return s.active }

// Deactivate marks the supplier inactive.
func (s *Supplier) Deactivate() { s.active = false }

// Activate marks the supplier active.
func (s *Supplier) Activate() { s.active = true }

func (s *Supplier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
