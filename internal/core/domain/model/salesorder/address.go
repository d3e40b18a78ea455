package salesorder

import (
	"fmt"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// AddressProps is the raw address record used by requests and documents.
type AddressProps struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Line1        string `json:"line1"`
	Line2        string `json:"line2,omitempty"`
	Line3        string `json:"line3,omitempty"`
	City         string `json:"city"`
	ProvinceCode string `json:"provinceCode,omitempty"`
	CountryCode  string `json:"countryCode"`
	PostalCode   string `json:"postalCode"`
	Phone        string `json:"phone,omitempty"`
}

// Address is a validated postal address. The country must be an ISO 3166-1
// alpha-2 code and a province, when present, a subdivision of that country.
type Address struct {
	props AddressProps
	guard guard.ConstructorGuard
}

func NewAddress(props AddressProps) (Address, error) {
	failures := make([]error, 0)
	for _, field := range []struct{ name, value string }{
		{"firstName", props.FirstName},
		{"lastName", props.LastName},
		{"line1", props.Line1},
		{"city", props.City},
		{"countryCode", props.CountryCode},
		{"postalCode", props.PostalCode},
	} {
		if strings.TrimSpace(field.value) == "" {
			failures = append(failures, errs.NewValueIsRequiredError(field.name))
		}
	}

	countryOK := validation.CountryCode(props.CountryCode)
	if props.CountryCode != "" && !countryOK {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause("countryCode",
			fmt.Errorf("%q is not an ISO 3166-1 alpha-2 code", props.CountryCode)))
	}
	if props.ProvinceCode != "" && countryOK && !validation.ProvinceCode(props.CountryCode, props.ProvinceCode) {
		failures = append(failures, errs.NewValueIsInvalidErrorWithCause("provinceCode",
			fmt.Errorf("%q is not a subdivision of %s", props.ProvinceCode, props.CountryCode)))
	}

	if len(failures) > 0 {
		return Address{}, errs.NewDomainErrorWithCause(errs.InvalidAddress, "address is invalid", props, failures...)
	}
	return Address{props: props, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Props() AddressProps {
	return a.props
}

func (a Address) FullName() string {
	return strings.TrimSpace(a.props.FirstName + " " + a.props.LastName)
}

func (a Address) IsEqual(other Address) bool {
	return a.props == other.props
}
