package order

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a client's request for a quantity of a product, tracked
// through the status lifecycle. It is the aggregate root of the back office.
//
// Order maintains these invariants:
//   - ClientID and ProductID are never empty
//   - Quantity is positive
//   - Value is a valid Money amount (product price x quantity at creation)
//   - Status is a member of the closed token set
//   - Terminal statuses never change (see Status.ChangeTo)
//
// Relations are stored as foreign keys only; the related client and product
// entities are resolved through an explicit lookup, never trusted to ride
// along inside an order payload.
type Order struct {
	// id is the collaborator-assigned numeric identifier; zero until the
	// order has been persisted
	id int64

	// clientID references the ordering client
	clientID string

	// productID references the ordered product
	productID string

	// quantity is the ordered amount (positive)
	quantity int

	// value is the computed order value
	value kernel.Money

	// invoiceRef is the attached fiscal document reference, empty when no
	// document was uploaded
	invoiceRef string

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the initial StatusPlaced state. The id is
// left unassigned; the persistence collaborator allocates it on creation.
//
// The empty-reference checks here are the local precondition the service
// enforces before any network call: an order without a client or product
// reference is rejected with a user-visible message.
func NewOrder(clientID, productID string, quantity int, value kernel.Money) (*Order, error) {
	o := &Order{
		status:        StatusPlaced,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientID(clientID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setValue(value),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// requires an assigned id and accepts any valid status and an optional
// invoice document reference.
func RestoreOrder(
	id int64,
	clientID, productID string,
	quantity int,
	value kernel.Money,
	invoiceRef string,
	status Status,
) (*Order, error) {
	o := &Order{
		invoiceRef:    invoiceRef,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setValue(value),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for struct literals and zero values.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the collaborator-assigned identifier, zero for unpersisted orders.
func (o *Order) ID() int64 {
	return o.id
}

// ClientID returns the referenced client's identifier.
func (o *Order) ClientID() string {
	return o.clientID
}

// ProductID returns the referenced product's identifier.
func (o *Order) ProductID() string {
	return o.productID
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Value returns the computed order value.
func (o *Order) Value() kernel.Money {
	return o.value
}

// InvoiceRef returns the attached document reference, empty when absent.
func (o *Order) InvoiceRef() string {
	return o.invoiceRef
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus transitions the order to the given status.
//
// The transition is validated by Status.ChangeTo: the new token must be
// valid and the current status must not be terminal. No further legality
// check is applied; the collaborator remains free to reject the update on
// its side.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID string) error {
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientId")
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setValue(value kernel.Money) error {
	if err := value.Validate(); err != nil {
		return err
	}
	o.value = value
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
