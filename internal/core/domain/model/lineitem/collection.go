package lineitem

import (
	"sales/internal/pkg/errs"
	"sales/internal/pkg/result"
)

// CreateAll creates every line item independently. On failure the error is a
// FailedToCreateLineItems composite holding one InvalidLineItem per bad
// request, in request order.
func CreateAll(reqs []CreateRequest) ([]*SalesLineItem, error) {
	results := result.Map(reqs, func(_ int, req CreateRequest) (*SalesLineItem, error) {
		return Create(req)
	})
	return result.Combine(errs.FailedToCreateLineItems, "failed to create line items", nil, results).Get()
}

// LoadAll is CreateAll for stored documents; the composite kind is
// FailedToLoadLineItems.
func LoadAll(docs []Document) ([]*SalesLineItem, error) {
	results := result.Map(docs, func(_ int, doc Document) (*SalesLineItem, error) {
		return Load(doc)
	})
	return result.Combine(errs.FailedToLoadLineItems, "failed to load line items", nil, results).Get()
}

// ToDocument projects a line item onto its persisted shape.
func ToDocument(li *SalesLineItem) Document {
	doc := Document{
		ID:              li.id.String(),
		LineNumber:      li.lineNumber.Value(),
		Quantity:        li.quantity.Value(),
		Variant:         variantToDocument(li.variant),
		Personalization: make([]PropertyDocument, 0, len(li.personalization)),
		Flags:           make([]FlagDocument, 0, len(li.flags)),
	}

	for _, p := range li.personalization {
		doc.Personalization = append(doc.Personalization, PropertyDocument{Name: p.Name, Value: p.Value})
	}
	for _, f := range li.flags {
		doc.Flags = append(doc.Flags, FlagDocument{
			Type:     string(f.Type),
			Property: f.Property,
			Value:    f.Value,
			Pattern:  f.Pattern,
		})
	}
	return doc
}
