package kafka

import (
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
)

// OrderMessage is the JSON body of an inbound order placed message.
type OrderMessage struct {
	AccountID       string                   `json:"accountId"`
	OrderName       string                   `json:"orderName"`
	OrderNumber     int                      `json:"orderNumber"`
	OrderDate       string                   `json:"orderDate"`
	Customer        salesorder.CustomerProps `json:"customer"`
	ShippingAddress salesorder.AddressProps  `json:"shippingAddress"`
	BillingAddress  *salesorder.AddressProps `json:"billingAddress,omitempty"`
	LineItems       []LineItemMessage        `json:"lineItems"`
}

type LineItemMessage struct {
	SKU             string            `json:"sku"`
	Quantity        int               `json:"quantity"`
	Personalization []PropertyMessage `json:"personalization"`
}

type PropertyMessage struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (m OrderMessage) toParams() commands.CreateSalesOrderParams {
	items := make([]commands.LineItemInput, 0, len(m.LineItems))
	for _, li := range m.LineItems {
		props := make([]personalization.Property, 0, len(li.Personalization))
		for _, p := range li.Personalization {
			props = append(props, personalization.Property{Name: p.Name, Value: p.Value})
		}
		items = append(items, commands.LineItemInput{
			SKU:        li.SKU,
			Quantity:   li.Quantity,
			Properties: props,
		})
	}

	return commands.CreateSalesOrderParams{
		AccountID:       m.AccountID,
		OrderName:       m.OrderName,
		OrderNumber:     m.OrderNumber,
		OrderDate:       m.OrderDate,
		Customer:        m.Customer,
		ShippingAddress: m.ShippingAddress,
		BillingAddress:  m.BillingAddress,
		LineItems:       items,
	}
}
