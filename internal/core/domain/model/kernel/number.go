package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrQuantityIsNotConstructed    = errs.NewValueIsRequiredError("Quantity must be created via NewQuantity")
	ErrLineNumberIsNotConstructed  = errs.NewValueIsRequiredError("LineNumber must be created via NewLineNumber")
	ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("OrderNumber must be created via NewOrderNumber")
)

// Quantity is the number of units ordered on a line item, at least 1.
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

func NewQuantity(raw int) (Quantity, error) {
	if raw < 1 {
		return Quantity{}, errs.NewDomainErrorWithCause(errs.InvalidQuantity, "quantity must be at least 1", raw,
			errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", raw)))
	}
	return Quantity{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

func (q Quantity) Value() int {
	return q.value
}

// LineNumber is the position label of a line item within its order.
type LineNumber struct {
	value int
	guard guard.ConstructorGuard
}

func NewLineNumber(raw int) (LineNumber, error) {
	if err := positive("lineNumber", raw); err != nil {
		return LineNumber{}, err
	}
	return LineNumber{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (n LineNumber) Validate() error {
	return n.guard.Validate(ErrLineNumberIsNotConstructed)
}

func (n LineNumber) Value() int {
	return n.value
}

// OrderNumber is the account-scoped number of a sales order. Uniqueness within
// an account is enforced by storage.
type OrderNumber struct {
	value int
	guard guard.ConstructorGuard
}

func NewOrderNumber(raw int) (OrderNumber, error) {
	if err := positive("orderNumber", raw); err != nil {
		return OrderNumber{}, err
	}
	return OrderNumber{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

func (n OrderNumber) Value() int {
	return n.value
}

func positive(param string, raw int) error {
	if raw > 0 {
		return nil
	}
	return errs.NewDomainErrorWithCause(errs.InvalidNumber, param+" must be a positive integer", raw,
		errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not greater than 0", raw)))
}
