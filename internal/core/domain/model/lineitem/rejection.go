package lineitem

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/pkg/errs"
)

// Rejection is the structured payload of an InvalidPersonalization failure.
type Rejection struct {
	LineItemID kernel.UUID
	LineNumber int
	Properties []personalization.Property
	Flags      []personalization.Flag
}

// RejectionOf extracts the Rejection from an InvalidPersonalization failure.
func RejectionOf(err error) (Rejection, bool) {
	var domainErr *errs.DomainError
	if !errors.As(err, &domainErr) || domainErr.Kind != errs.InvalidPersonalization {
		return Rejection{}, false
	}
	rejection, ok := domainErr.Value.(Rejection)
	return rejection, ok
}
