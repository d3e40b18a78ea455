package lineitem_test

import (
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
)

func braceletVariant() lineitem.VariantDocument {
	return lineitem.VariantDocument{
		CatalogID: "var-1",
		SKU:       "BRC-GLD-01",
		Image:     "https://cdn.example.com/brc-gld-01.png",
		Type:      "bracelet",
		Option1:   "Gold",
		Option2:   "Small",
		ProductionData: map[string]string{
			"template": "brc-01",
		},
		ManufacturingCost: &lineitem.MoneyDocument{Amount: "4.25", Currency: "USD"},
		ShippingCost:      &lineitem.MoneyDocument{Amount: "1.10", Currency: "USD"},
		Weight:            &lineitem.MeasureDocument{Value: "2.5", Unit: "oz"},
		Height:            &lineitem.MeasureDocument{Value: "1", Unit: "in"},
		Width:             &lineitem.MeasureDocument{Value: "7", Unit: "in"},
		PersonalizationRules: []lineitem.RuleDocument{
			{
				Name:       "initial",
				Type:       "dropdownlist",
				Label:      "Initial",
				Required:   true,
				OptionList: "A,B,C,D,E,F,G,H,I,J,K,L,M,N,O,P,Q,R,S,T,U,V,W,X,Y,Z",
			},
			{
				Name:      "top_text",
				Type:      "input",
				Label:     "Top Text",
				Pattern:   "^[a-zA-Z0-9 ]*$",
				Required:  true,
				MaxLength: 16,
			},
		},
	}
}

func cleanProperties() []personalization.Property {
	return []personalization.Property{
		{Name: "initial", Value: "J"},
		{Name: "top_text", Value: "Valid Text"},
	}
}

func validRequest(lineNumber int) lineitem.CreateRequest {
	return lineitem.CreateRequest{
		LineNumber: lineNumber,
		Quantity:   1,
		Variant:    braceletVariant(),
		Properties: cleanProperties(),
	}
}
