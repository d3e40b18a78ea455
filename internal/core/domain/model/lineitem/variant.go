package lineitem

import (
	"maps"
	"slices"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVariantIsNotConstructed = errs.NewValueIsRequiredError("Variant must be created via NewVariant")

// Variant is the frozen copy of catalog data a line item was ordered against.
// Costs and measures are optional; everything else is copied verbatim.
type Variant struct {
	catalogID         string
	sku               string
	image             string
	svg               string
	variantType       string
	options           [3]string
	productionData    map[string]string
	manufacturingCost *kernel.Money
	shippingCost      *kernel.Money
	weight            *kernel.Measure
	height            *kernel.Measure
	width             *kernel.Measure
	rules             []personalization.Rule

	guard guard.ConstructorGuard
}

// NewVariant validates a variant snapshot. All problems are reported together
// under kind InvalidVariant.
func NewVariant(doc VariantDocument) (Variant, error) {
	v := Variant{
		catalogID:      doc.CatalogID,
		image:          doc.Image,
		svg:            doc.SVG,
		variantType:    doc.Type,
		options:        [3]string{doc.Option1, doc.Option2, doc.Option3},
		productionData: maps.Clone(doc.ProductionData),
		guard:          guard.NewConstructorGuard(),
	}

	var manufacturingErr, shippingErr, weightErr, heightErr, widthErr error
	v.manufacturingCost, manufacturingErr = optionalMoney(doc.ManufacturingCost)
	v.shippingCost, shippingErr = optionalMoney(doc.ShippingCost)
	v.weight, weightErr = optionalMeasure(doc.Weight, kernel.NewWeight)
	v.height, heightErr = optionalMeasure(doc.Height, kernel.NewDimension)
	v.width, widthErr = optionalMeasure(doc.Width, kernel.NewDimension)

	if err := errs.Collect(errs.InvalidVariant, "variant is invalid", doc.SKU,
		v.setSKU(doc.SKU),
		manufacturingErr,
		shippingErr,
		weightErr,
		heightErr,
		widthErr,
		v.setRules(doc.PersonalizationRules),
	); err != nil {
		return Variant{}, err
	}

	return v, nil
}

func (v Variant) Validate() error {
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

func (v Variant) CatalogID() string { return v.catalogID }
func (v Variant) SKU() string { return v.sku }
func (v Variant) Image() string { return v.image }
func (v Variant) SVG() string { return v.svg }
func (v Variant) Type() string { return v.variantType }
func (v Variant) Options() [3]string { return v.options }
func (v Variant) ProductionData() map[string]string {
	return maps.Clone(v.productionData)
}

func (v Variant) ManufacturingCost() (kernel.Money, bool) { return deref(v.manufacturingCost) }
func (v Variant) ShippingCost() (kernel.Money, bool) { return deref(v.shippingCost) }
func (v Variant) Weight() (kernel.Measure, bool) { return deref(v.weight) }
func (v Variant) Height() (kernel.Measure, bool) { return deref(v.height) }
func (v Variant) Width() (kernel.Measure, bool) { return deref(v.width) }

// Rules returns the personalization rules in catalog order.
func (v Variant) Rules() []personalization.Rule {
	return slices.Clone(v.rules)
}

func (v *Variant) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	v.sku = sku
	return nil
}

func (v *Variant) setRules(docs []RuleDocument) error {
	rules := make([]personalization.Rule, 0, len(docs))
	var failures []error
	for _, doc := range docs {
		rule, err := personalization.NewRule(ruleParams(doc))
		if err != nil {
			failures = append(failures, err)
			continue
		}
		rules = append(rules, rule)
	}
	if len(failures) > 0 {
		return errs.Collect(errs.InvalidPersonalizationRule, "personalization rules are invalid", nil, failures...)
	}

	v.rules = rules
	return nil
}

func ruleParams(doc RuleDocument) personalization.RuleParams {
	options := slices.Clone(doc.Options)
	if len(options) == 0 && doc.OptionList != "" {
		options = personalization.ParseOptions(doc.OptionList)
	}

	return personalization.RuleParams{
		Name:        doc.Name,
		Kind:        doc.Type,
		Label:       doc.Label,
		Pattern:     doc.Pattern,
		Required:    doc.Required,
		MaxLength:   doc.MaxLength,
		Options:     options,
		Placeholder: doc.Placeholder,
	}
}

func optionalMoney(doc *MoneyDocument) (*kernel.Money, error) {
	if doc == nil {
		return nil, nil
	}
	m, err := kernel.MoneyFromString(doc.Amount, doc.Currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func optionalMeasure(
	doc *MeasureDocument,
	build func(decimal.Decimal, kernel.Unit) (kernel.Measure, error),
) (*kernel.Measure, error) {
	if doc == nil {
		return nil, nil
	}
	value, err := decimal.NewFromString(doc.Value)
	if err != nil {
		return nil, errs.NewDomainErrorWithCause(errs.InvalidMeasure, "measure is invalid", doc.Value,
			errs.NewValueIsInvalidErrorWithCause("value", err))
	}
	m, err := build(value, kernel.Unit(doc.Unit))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func variantToDocument(v Variant) VariantDocument {
	doc := VariantDocument{
		CatalogID:            v.catalogID,
		SKU:                  v.sku,
		Image:                v.image,
		SVG:                  v.svg,
		Type:                 v.variantType,
		Option1:              v.options[0],
		Option2:              v.options[1],
		Option3:              v.options[2],
		ProductionData:       maps.Clone(v.productionData),
		ManufacturingCost:    moneyToDocument(v.manufacturingCost),
		ShippingCost:         moneyToDocument(v.shippingCost),
		Weight:               measureToDocument(v.weight),
		Height:               measureToDocument(v.height),
		Width:                measureToDocument(v.width),
		PersonalizationRules: make([]RuleDocument, 0, len(v.rules)),
	}

	for _, rule := range v.rules {
		params := rule.Params()
		doc.PersonalizationRules = append(doc.PersonalizationRules, RuleDocument{
			Name:        params.Name,
			Type:        params.Kind,
			Label:       params.Label,
			Pattern:     params.Pattern,
			Required:    params.Required,
			MaxLength:   params.MaxLength,
			Options:     params.Options,
			Placeholder: params.Placeholder,
		})
	}
	return doc
}

func moneyToDocument(m *kernel.Money) *MoneyDocument {
	if m == nil {
		return nil
	}
	return &MoneyDocument{Amount: m.Amount().String(), Currency: m.Currency()}
}

func measureToDocument(m *kernel.Measure) *MeasureDocument {
	if m == nil {
		return nil
	}
	return &MeasureDocument{Value: m.Value().String(), Unit: string(m.Unit())}
}
