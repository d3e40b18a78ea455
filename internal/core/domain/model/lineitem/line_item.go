package lineitem

import (
	"errors"
	"fmt"
	"slices"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/pkg/errs"
)

var ErrLineItemIsNotConstructed = errors.New("SalesLineItem must be created via Create or Load")

// CreateRequest is the untrusted input for one line item. The variant must
// already be resolved from the catalog; when it could not be, VariantErr holds
// the reason and is reported in place of the variant checks.
type CreateRequest struct {
	LineNumber int
	Quantity   int
	Variant    VariantDocument
	VariantErr error
	Properties []personalization.Property
}

// SalesLineItem is one ordered variant with its personalization. Flags always
// reflect the current personalization against the variant's rules.
type SalesLineItem struct {
	id              kernel.UUID
	lineNumber      kernel.LineNumber
	quantity        kernel.Quantity
	variant         Variant
	personalization []personalization.Property
	flags           []personalization.Flag

	isConstructed bool
}

// Create validates a new line item. Line number, quantity and variant are all
// checked before failing with one InvalidLineItem error. Flagged
// personalization is accepted and kept for later remediation.
func Create(req CreateRequest) (*SalesLineItem, error) {
	li := &SalesLineItem{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errs.Collect(errs.InvalidLineItem, fmt.Sprintf("failed to create line item %d", req.LineNumber), req,
		li.setLineNumber(req.LineNumber),
		li.setQuantity(req.Quantity),
		li.resolveVariant(req),
	); err != nil {
		return nil, err
	}

	li.setPersonalization(req.Properties)
	return li, nil
}

// Load rebuilds a line item from its document. A failure here means the stored
// state is corrupted and is reported as FailedToLoadLineItem.
func Load(doc Document) (*SalesLineItem, error) {
	li := &SalesLineItem{isConstructed: true}

	if err := errs.Collect(errs.FailedToLoadLineItem, fmt.Sprintf("failed to load line item %d", doc.LineNumber), doc,
		li.setID(doc.ID),
		li.setLineNumber(doc.LineNumber),
		li.setQuantity(doc.Quantity),
		li.setVariant(doc.Variant),
	); err != nil {
		return nil, err
	}

	props := make([]personalization.Property, 0, len(doc.Personalization))
	for _, p := range doc.Personalization {
		props = append(props, personalization.Property{Name: p.Name, Value: p.Value})
	}
	li.setPersonalization(props)
	return li, nil
}

func (li *SalesLineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (li *SalesLineItem) ID() kernel.UUID {
	return li.id
}

func (li *SalesLineItem) LineNumber() kernel.LineNumber {
	return li.lineNumber
}

func (li *SalesLineItem) Quantity() kernel.Quantity {
	return li.quantity
}

func (li *SalesLineItem) Variant() Variant {
	return li.variant
}

func (li *SalesLineItem) Personalization() []personalization.Property {
	return slices.Clone(li.personalization)
}

func (li *SalesLineItem) Flags() []personalization.Flag {
	return slices.Clone(li.flags)
}

func (li *SalesLineItem) IsFlagged() bool {
	return len(li.flags) > 0
}

// UpdatePersonalization replaces the personalization only if it produces no
// flags. Otherwise it fails with InvalidPersonalization carrying a Rejection
// and leaves the line item untouched.
func (li *SalesLineItem) UpdatePersonalization(props []personalization.Property) error {
	flags := personalization.Validate(li.variant.rules, props)
	if len(flags) > 0 {
		rejection := Rejection{
			LineItemID: li.id,
			LineNumber: li.lineNumber.Value(),
			Properties: slices.Clone(props),
			Flags:      flags,
		}
		return errs.NewDomainError(errs.InvalidPersonalization,
			fmt.Sprintf("line item %d is flagged for validation errors", li.lineNumber.Value()), rejection)
	}

	li.personalization = slices.Clone(props)
	li.flags = flags
	return nil
}

func (li *SalesLineItem) setID(raw string) error {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	li.id = id
	return nil
}

func (li *SalesLineItem) setLineNumber(raw int) error {
	n, err := kernel.NewLineNumber(raw)
	if err != nil {
		return err
	}
	li.lineNumber = n
	return nil
}

func (li *SalesLineItem) setQuantity(raw int) error {
	q, err := kernel.NewQuantity(raw)
	if err != nil {
		return err
	}
	li.quantity = q
	return nil
}

func (li *SalesLineItem) setVariant(doc VariantDocument) error {
	v, err := NewVariant(doc)
	if err != nil {
		return err
	}
	li.variant = v
	return nil
}

func (li *SalesLineItem) resolveVariant(req CreateRequest) error {
	if req.VariantErr != nil {
		return errs.NewDomainErrorWithCause(errs.InvalidVariant, "variant could not be resolved", req.Variant.SKU,
			req.VariantErr)
	}
	return li.setVariant(req.Variant)
}

func (li *SalesLineItem) setPersonalization(props []personalization.Property) {
	li.personalization = slices.Clone(props)
	if li.personalization == nil {
		li.personalization = make([]personalization.Property, 0)
	}
	li.flags = personalization.Validate(li.variant.rules, li.personalization)
}
