// Package validation wraps go-playground/validator for the field formats the
// domain model checks: email addresses, ISO 3166 country and subdivision codes
// and ISO 4217 currency codes.
package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return instance().Var(s, "required,email") == nil
}

// CountryCode reports whether s is an ISO 3166-1 alpha-2 code.
func CountryCode(s string) bool {
	return instance().Var(s, "required,iso3166_1_alpha2") == nil
}

// ProvinceCode reports whether province is an ISO 3166-2 subdivision of country.
// Both the bare subdivision ("CA") and the full code ("US-CA") are accepted.
func ProvinceCode(country, province string) bool {
	code := province
	if !strings.Contains(province, "-") {
		code = country + "-" + province
	}
	if !strings.HasPrefix(code, country+"-") {
		return false
	}
	return instance().Var(code, "required,iso3166_2") == nil
}

// CurrencyCode reports whether s is an ISO 4217 alphabetic code.
func CurrencyCode(s string) bool {
	return instance().Var(s, "required,iso4217") == nil
}

// Struct checks the `validate` tags of a request struct.
func Struct(v any) error {
	return instance().Struct(v)
}
