package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money is an immutable value object for non-negative currency amounts.
// The collaborator exchanges amounts as plain JSON numbers, so Money keeps a
// float64 and does not track a currency code.
//
// The zero value of Money is invalid and fails validation; use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(199.90)
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MultiplyQty(3) // 599.70
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from the given amount.
// Returns an error when the amount is negative.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a valid Money value of zero amount.
func ZeroMoney() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the numeric amount.
func (m Money) Amount() float64 {
	return m.amount
}

// MultiplyQty returns a new Money value equal to this amount multiplied by
// the given quantity. The receiver is not modified.
func (m Money) MultiplyQty(qty int) Money {
	return Money{
		amount: m.amount * float64(qty),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate checks that the Money value was built through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
