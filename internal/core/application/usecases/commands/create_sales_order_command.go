package commands

import (
	"errors"

	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/guard"
)

var ErrCreateSalesOrderCommandIsNotConstructed = errors.New(
	"CreateSalesOrderCommand must be created via NewCreateSalesOrderCommand constructor",
)

// LineItemInput is one requested line: a catalog SKU, a quantity and the
// submitted personalization. Line numbers are assigned in input order.
type LineItemInput struct {
	SKU        string
	Quantity   int
	Properties []personalization.Property
}

// CreateSalesOrderParams is the raw order as received from a client or broker.
// A nil BillingAddress means "same as shipping".
type CreateSalesOrderParams struct {
	AccountID       string
	OrderName       string
	OrderNumber     int
	OrderDate       string
	Customer        salesorder.CustomerProps
	ShippingAddress salesorder.AddressProps
	BillingAddress  *salesorder.AddressProps
	LineItems       []LineItemInput
}

// CreateSalesOrderCommand places a new order. The command carries the raw
// input untouched: salesorder.Create validates it, unknown and blank SKUs
// included, so that every failure is reported in one composite.
type CreateSalesOrderCommand struct { //nolint:recvcheck //using for validation
	params CreateSalesOrderParams

	guard guard.ConstructorGuard
}

func NewCreateSalesOrderCommand(params CreateSalesOrderParams) (CreateSalesOrderCommand, error) {
	return CreateSalesOrderCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSalesOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSalesOrderCommandIsNotConstructed)
}

func (c CreateSalesOrderCommand) AccountID() string {
	return c.params.AccountID
}

func (c CreateSalesOrderCommand) OrderName() string {
	return c.params.OrderName
}

func (c CreateSalesOrderCommand) OrderNumber() int {
	return c.params.OrderNumber
}

func (c CreateSalesOrderCommand) OrderDate() string {
	return c.params.OrderDate
}

func (c CreateSalesOrderCommand) Customer() salesorder.CustomerProps {
	return c.params.Customer
}

func (c CreateSalesOrderCommand) ShippingAddress() salesorder.AddressProps {
	return c.params.ShippingAddress
}

// BillingAddress falls back to the shipping address when none was given.
func (c CreateSalesOrderCommand) BillingAddress() salesorder.AddressProps {
	if c.params.BillingAddress == nil {
		return c.params.ShippingAddress
	}
	return *c.params.BillingAddress
}

func (c CreateSalesOrderCommand) LineItems() []LineItemInput {
	return c.params.LineItems
}
