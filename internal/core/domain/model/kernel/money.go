package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a non-negative decimal amount in an ISO 4217 currency.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	var failures []error
	if amount.IsNegative() {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount)))
	}
	if !validation.CurrencyCode(currency) {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not an ISO 4217 code", currency)))
	}
	if len(failures) > 0 {
		return Money{}, errs.NewDomainErrorWithCause(errs.InvalidMoney, "money is invalid",
			amount.String()+" "+currency, failures...)
	}

	return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal amount such as "12.50".
func MoneyFromString(amount, currency string) (Money, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewDomainErrorWithCause(errs.InvalidMoney, "money is invalid", amount,
			errs.NewValueIsInvalidErrorWithCause("amount", err))
	}
	return NewMoney(value, currency)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
