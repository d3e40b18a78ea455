package http

import (
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/validation"
)

type CreateSalesOrderRequest struct {
	AccountID       string                   `json:"accountId"`
	OrderName       string                   `json:"orderName"`
	OrderNumber     int                      `json:"orderNumber"`
	OrderDate       string                   `json:"orderDate"`
	Customer        salesorder.CustomerProps `json:"customer"`
	ShippingAddress salesorder.AddressProps  `json:"shippingAddress"`
	BillingAddress  *salesorder.AddressProps `json:"billingAddress,omitempty"`
	LineItems       []LineItemRequest        `json:"lineItems"`
}

type LineItemRequest struct {
	SKU             string            `json:"sku"`
	Quantity        int               `json:"quantity"`
	Personalization []PropertyRequest `json:"personalization"`
}

type PropertyRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpdatePersonalizationRequest struct {
	Personalization []PropertyRequest `json:"personalization"`
}

type ListSalesOrdersRequest struct {
	AccountID string `query:"accountId"`
	Status    string `query:"status"`
	Page      int    `query:"page" validate:"gte=0"`
	Size      int    `query:"size" validate:"gte=0,lte=100"`
}

func (r CreateSalesOrderRequest) toParams() commands.CreateSalesOrderParams {
	items := make([]commands.LineItemInput, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, commands.LineItemInput{
			SKU:        li.SKU,
			Quantity:   li.Quantity,
			Properties: toProperties(li.Personalization),
		})
	}

	return commands.CreateSalesOrderParams{
		AccountID:       r.AccountID,
		OrderName:       r.OrderName,
		OrderNumber:     r.OrderNumber,
		OrderDate:       r.OrderDate,
		Customer:        r.Customer,
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		LineItems:       items,
	}
}

func (r UpdatePersonalizationRequest) properties() []personalization.Property {
	return toProperties(r.Personalization)
}

func toProperties(in []PropertyRequest) []personalization.Property {
	out := make([]personalization.Property, 0, len(in))
	for _, p := range in {
		out = append(out, personalization.Property{Name: p.Name, Value: p.Value})
	}
	return out
}

type requestValidator struct{}

func (requestValidator) Validate(i any) error {
	return validation.Struct(i)
}
