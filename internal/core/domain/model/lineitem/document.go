package lineitem

// Document is the persisted shape of a line item. Flags are stored for
// readers of the document but are always recomputed on Load.
type Document struct {
	ID              string             `json:"id"`
	LineNumber      int                `json:"lineNumber"`
	Quantity        int                `json:"quantity"`
	Variant         VariantDocument    `json:"variant"`
	Personalization []PropertyDocument `json:"personalization"`
	Flags           []FlagDocument     `json:"flags"`
}

// VariantDocument is the catalog variant frozen at order time. The catalog
// adapter produces it and the line item stores it unchanged.
type VariantDocument struct {
	CatalogID            string            `json:"id,omitempty" yaml:"id"`
	SKU                  string            `json:"sku" yaml:"sku"`
	Image                string            `json:"image,omitempty" yaml:"image"`
	SVG                  string            `json:"svg,omitempty" yaml:"svg"`
	Type                 string            `json:"type,omitempty" yaml:"type"`
	Option1              string            `json:"option1,omitempty" yaml:"option1"`
	Option2              string            `json:"option2,omitempty" yaml:"option2"`
	Option3              string            `json:"option3,omitempty" yaml:"option3"`
	ProductionData       map[string]string `json:"productionData,omitempty" yaml:"productionData"`
	ManufacturingCost    *MoneyDocument    `json:"manufacturingCost,omitempty" yaml:"manufacturingCost"`
	ShippingCost         *MoneyDocument    `json:"shippingCost,omitempty" yaml:"shippingCost"`
	Weight               *MeasureDocument  `json:"weight,omitempty" yaml:"weight"`
	Height               *MeasureDocument  `json:"height,omitempty" yaml:"height"`
	Width                *MeasureDocument  `json:"width,omitempty" yaml:"width"`
	PersonalizationRules []RuleDocument    `json:"personalizationRules" yaml:"personalizationRules"`
}

type MoneyDocument struct {
	Amount   string `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
}

type MeasureDocument struct {
	Value string `json:"value" yaml:"value"`
	Unit  string `json:"unit" yaml:"unit"`
}

// RuleDocument mirrors personalization.RuleParams. Options may also arrive
// as one comma separated string in OptionList, as older catalog exports do.
type RuleDocument struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Label       string   `json:"label,omitempty" yaml:"label"`
	Pattern     string   `json:"pattern,omitempty" yaml:"pattern"`
	Required    bool     `json:"required" yaml:"required"`
	MaxLength   int      `json:"maxLength,omitempty" yaml:"maxLength"`
	Options     []string `json:"options,omitempty" yaml:"options"`
	OptionList  string   `json:"optionList,omitempty" yaml:"optionList"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder"`
}

type PropertyDocument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type FlagDocument struct {
	Type     string `json:"type"`
	Property string `json:"property"`
	Value    string `json:"value,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
}
