package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"

	"github.com/stretchr/testify/require"
)

func ringVariant() lineitem.VariantDocument {
	return lineitem.VariantDocument{
		SKU:  "RNG-01",
		Type: "ring",
		PersonalizationRules: []lineitem.RuleDocument{
			{Name: "engraving", Type: "input", Pattern: "[A-Za-z ]*", Required: true, MaxLength: 12},
		},
	}
}

func address() salesorder.AddressProps {
	return salesorder.AddressProps{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Line1:       "12 St James's Square",
		City:        "London",
		CountryCode: "GB",
		PostalCode:  "SW1Y 4JH",
	}
}

func createParams() commands.CreateSalesOrderParams {
	return commands.CreateSalesOrderParams{
		AccountID:       "7d3c8a57-1c0e-4a8e-b0a3-2f6f4d2c9e11",
		OrderName:       "#2001",
		OrderNumber:     2001,
		OrderDate:       "2024-05-01",
		Customer:        salesorder.CustomerProps{Name: "Ada Lovelace", Email: "ada@example.com"},
		ShippingAddress: address(),
		LineItems: []commands.LineItemInput{
			{SKU: "RNG-01", Quantity: 1, Properties: []personalization.Property{{Name: "engraving", Value: "Ada"}}},
			{SKU: "RNG-01", Quantity: 2, Properties: []personalization.Property{{Name: "engraving", Value: "Charles"}}},
		},
	}
}

func existingOrder(t *testing.T) *salesorder.SalesOrder {
	t.Helper()
	order, err := salesorder.Create(salesorder.CreateRequest{
		AccountID:       "7d3c8a57-1c0e-4a8e-b0a3-2f6f4d2c9e11",
		OrderName:       "#2001",
		OrderNumber:     2001,
		OrderDate:       "2024-05-01",
		Customer:        salesorder.CustomerProps{Name: "Ada Lovelace", Email: "ada@example.com"},
		ShippingAddress: address(),
		BillingAddress:  address(),
		LineItems: []lineitem.CreateRequest{{
			LineNumber: 1,
			Quantity:   1,
			Variant:    ringVariant(),
			Properties: []personalization.Property{{Name: "engraving", Value: "Ada 1"}},
		}},
	})
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}
