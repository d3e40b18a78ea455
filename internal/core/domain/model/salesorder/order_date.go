package salesorder

import (
	"fmt"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrOrderDateIsNotConstructed = errs.NewValueIsRequiredError("OrderDate must be created via ParseOrderDate")

const dateLayout = "2006-01-02"

// OrderDate is the date the customer placed the order, kept in UTC.
type OrderDate struct {
	value time.Time
	guard guard.ConstructorGuard
}

// ParseOrderDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseOrderDate(raw string) (OrderDate, error) {
	var (
		t   time.Time
		err error
	)
	if len(raw) == len(dateLayout) {
		t, err = time.Parse(dateLayout, raw)
	} else {
		t, err = time.Parse(time.RFC3339Nano, raw)
	}
	if err != nil {
		return OrderDate{}, errs.NewDomainErrorWithCause(errs.InvalidDate, "order date is invalid", raw,
			errs.NewValueIsInvalidErrorWithCause("orderDate", err))
	}
	return NewOrderDate(t)
}

func NewOrderDate(t time.Time) (OrderDate, error) {
	if t.IsZero() {
		return OrderDate{}, errs.NewDomainErrorWithCause(errs.InvalidDate, "order date is invalid", t,
			errs.NewValueIsRequiredErrorWithCause("orderDate", fmt.Errorf("zero time")))
	}
	return OrderDate{value: t.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (d OrderDate) Validate() error {
	return d.guard.Validate(ErrOrderDateIsNotConstructed)
}

func (d OrderDate) Time() time.Time {
	return d.value
}

func (d OrderDate) String() string {
	return d.value.Format(time.RFC3339Nano)
}
