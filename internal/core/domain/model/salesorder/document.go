package salesorder

import (
	"time"

	"sales/internal/core/domain/model/lineitem"
)

// Document is the persisted shape of a sales order. ToDocument and Load are
// inverses: Load(ToDocument(o)) rebuilds an equivalent order.
type Document struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"accountId"`
	OrderName       string              `json:"orderName"`
	OrderNumber     int                 `json:"orderNumber"`
	OrderDate       string              `json:"orderDate"`
	OrderStatus     string              `json:"orderStatus"`
	Customer        CustomerProps       `json:"customer"`
	ShippingAddress AddressProps        `json:"shippingAddress"`
	BillingAddress  AddressProps        `json:"billingAddress"`
	LineItems       []lineitem.Document `json:"lineItems"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Version         int                 `json:"version"`
}

func ToDocument(o *SalesOrder) Document {
	doc := Document{
		ID:              o.id.String(),
		AccountID:       o.accountID.String(),
		OrderName:       o.orderName,
		OrderNumber:     o.orderNumber.Value(),
		OrderDate:       o.orderDate.String(),
		OrderStatus:     o.status.String(),
		Customer:        o.customer.Props(),
		ShippingAddress: o.shippingAddress.Props(),
		BillingAddress:  o.billingAddress.Props(),
		LineItems:       make([]lineitem.Document, 0, len(o.lineItems)),
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.updatedAt,
		Version:         o.version,
	}
	for _, li := range o.lineItems {
		doc.LineItems = append(doc.LineItems, lineitem.ToDocument(li))
	}
	return doc
}
