package errs

import (
	"errors"
	"strings"
)

// Kind tags a domain failure. A Kind is itself an error so callers can test a
// failure tree with errors.Is(err, errs.InvalidAddress).
type Kind string

func (k Kind) Error() string {
	return string(k)
}

// Leaf validation failures.
const (
	InvalidQuantity            Kind = "InvalidQuantity"
	InvalidNumber              Kind = "InvalidNumber"
	InvalidDate                Kind = "InvalidDate"
	InvalidAddress             Kind = "InvalidAddress"
	InvalidCustomer            Kind = "InvalidCustomer"
	InvalidAccountID           Kind = "InvalidAccountId"
	InvalidOrderID             Kind = "InvalidOrderId"
	InvalidStatus              Kind = "InvalidStatus"
	InvalidMoney               Kind = "InvalidMoney"
	InvalidMeasure             Kind = "InvalidMeasure"
	InvalidPersonalizationRule Kind = "InvalidPersonalizationRule"
	InvalidVariant             Kind = "InvalidVariant"
)

// Composite failures.
const (
	InvalidLineItem         Kind = "InvalidLineItem"
	FailedToLoadLineItem    Kind = "FailedToLoadLineItem"
	FailedToCreateLineItems Kind = "FailedToCreateLineItems"
	FailedToLoadLineItems   Kind = "FailedToLoadLineItems"
	InvalidSalesOrder       Kind = "InvalidSalesOrder"
	FailedToLoadSalesOrder  Kind = "FailedToLoadSalesOrder"
)

// Mutation failures.
const (
	InvalidPersonalization Kind = "InvalidPersonalization"
	InvalidShippingAddress Kind = "InvalidShippingAddress"
	LineItemNotFound       Kind = "LineItemNotFound"
)

// DomainError is a structured failure report. Inner holds the nested failures
// in the order they were produced; Value holds the offending input, if any.
type DomainError struct {
	Kind    Kind
	Message string
	Inner   []error
	Value   any
}

func NewDomainError(kind Kind, message string, value any) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
		Value:   value,
	}
}

func NewDomainErrorWithCause(kind Kind, message string, value any, causes ...error) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
		Inner:   compact(causes),
		Value:   value,
	}
}

// Collect builds one composite failure from independent outcomes. Nil errors
// are skipped; when nothing failed Collect returns nil.
func Collect(kind Kind, message string, value any, errs ...error) error {
	inner := compact(errs)
	if len(inner) == 0 {
		return nil
	}

	return &DomainError{
		Kind:    kind,
		Message: message,
		Inner:   inner,
		Value:   value,
	}
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(sanitize(e.Message))
	}

	if len(e.Inner) > 0 {
		b.WriteString(" [")
		for i, err := range e.Inner {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(err.Error())
		}
		b.WriteString("]")
	}

	return b.String()
}

func (e *DomainError) Unwrap() []error {
	return append([]error{e.Kind}, e.Inner...)
}

// KindOf returns the kind of the outermost DomainError in err's tree.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

// Children returns the nested failures of a composite. A plain error is its
// own single child so callers can splice any failure into a parent report.
func Children(err error) []error {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) && len(domainErr.Inner) > 0 {
		return domainErr.Inner
	}
	return []error{err}
}

func compact(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
