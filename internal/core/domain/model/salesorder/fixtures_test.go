package salesorder_test

import (
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
)

const accountID = "4f1c2e0a-8a36-4b7e-9d55-3f0d2a1b6c77"

func shippingAddress() salesorder.AddressProps {
	return salesorder.AddressProps{
		FirstName:    "Jane",
		LastName:     "Doe",
		Line1:        "1 Market St",
		Line2:        "Suite 400",
		City:         "San Francisco",
		ProvinceCode: "CA",
		CountryCode:  "US",
		PostalCode:   "94105",
		Phone:        "+1 415 555 0100",
	}
}

func necklaceVariant() lineitem.VariantDocument {
	return lineitem.VariantDocument{
		CatalogID:         "var-7",
		SKU:               "NCK-SLV-02",
		Type:              "necklace",
		Option1:           "Silver",
		ManufacturingCost: &lineitem.MoneyDocument{Amount: "12.00", Currency: "USD"},
		Weight:            &lineitem.MeasureDocument{Value: "18", Unit: "g"},
		PersonalizationRules: []lineitem.RuleDocument{
			{
				Name:      "name",
				Type:      "text",
				Pattern:   "[A-Za-z ]*",
				Required:  true,
				MaxLength: 10,
			},
			{
				Name:     "font",
				Type:     "dropdown",
				Options:  []string{"Serif", "Script"},
				Required: false,
			},
		},
	}
}

func lineItemRequest(lineNumber int, name string) lineitem.CreateRequest {
	return lineitem.CreateRequest{
		LineNumber: lineNumber,
		Quantity:   1,
		Variant:    necklaceVariant(),
		Properties: []personalization.Property{{Name: "name", Value: name}},
	}
}

func validRequest() salesorder.CreateRequest {
	return salesorder.CreateRequest{
		AccountID:   accountID,
		OrderName:   "#1001",
		OrderNumber: 1001,
		OrderDate:   "2024-03-15",
		Customer: salesorder.CustomerProps{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		ShippingAddress: shippingAddress(),
		BillingAddress:  shippingAddress(),
		LineItems: []lineitem.CreateRequest{
			lineItemRequest(1, "Jane"),
			lineItemRequest(2, "Ada"),
		},
	}
}
