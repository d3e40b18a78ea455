package salesorder

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/lineitem"
)

// Event type names as written to the outbox and published to the broker.
const (
	EventOrderPlaced            = "sales.order.placed"
	EventShippingAddressUpdated = "sales.order.shipping_address_updated"
	EventPersonalizationUpdated = "sales.order.personalization_updated"
)

// DomainEvent is something that happened to a sales order. The aggregate only
// records events; delivering them is the caller's job.
type DomainEvent interface {
	EventType() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

type OrderPlaced struct {
	OrderID      kernel.UUID `json:"-"`
	AccountID    string      `json:"accountId"`
	OrderNumber  int         `json:"orderNumber"`
	OrderName    string      `json:"orderName"`
	LineItems    int         `json:"lineItems"`
	FlaggedItems int         `json:"flaggedItems"`
	At           time.Time   `json:"occurredAt"`
}

func (e OrderPlaced) EventType() string        { return EventOrderPlaced }
func (e OrderPlaced) AggregateID() kernel.UUID { return e.OrderID }
func (e OrderPlaced) OccurredAt() time.Time    { return e.At }

type ShippingAddressUpdated struct {
	OrderID kernel.UUID  `json:"-"`
	Address AddressProps `json:"address"`
	At      time.Time    `json:"occurredAt"`
}

func (e ShippingAddressUpdated) EventType() string        { return EventShippingAddressUpdated }
func (e ShippingAddressUpdated) AggregateID() kernel.UUID { return e.OrderID }
func (e ShippingAddressUpdated) OccurredAt() time.Time    { return e.At }

type PersonalizationUpdated struct {
	OrderID    kernel.UUID                 `json:"-"`
	LineItemID string                      `json:"lineItemId"`
	LineNumber int                         `json:"lineNumber"`
	Properties []lineitem.PropertyDocument `json:"properties"`
	At         time.Time                   `json:"occurredAt"`
}

func (e PersonalizationUpdated) EventType() string        { return EventPersonalizationUpdated }
func (e PersonalizationUpdated) AggregateID() kernel.UUID { return e.OrderID }
func (e PersonalizationUpdated) OccurredAt() time.Time    { return e.At }
