package salesorder

import (
	"fmt"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"
)

var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("Customer must be created via NewCustomer")

type CustomerProps struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Customer is the buyer of an order: a non-empty name and a valid email.
type Customer struct {
	props CustomerProps
	guard guard.ConstructorGuard
}

func NewCustomer(props CustomerProps) (Customer, error) {
	failures := make([]error, 0)
	if strings.TrimSpace(props.Name) == "" {
		failures = append(failures, errs.NewValueIsRequiredError("name"))
	}
	if !validation.Email(props.Email) {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", props.Email)))
	}

	if len(failures) > 0 {
		return Customer{}, errs.NewDomainErrorWithCause(errs.InvalidCustomer, "customer is invalid", props, failures...)
	}
	return Customer{props: props, guard: guard.NewConstructorGuard()}, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.props.Name
}

func (c Customer) Email() string {
	return c.props.Email
}

func (c Customer) Props() CustomerProps {
	return c.props
}
