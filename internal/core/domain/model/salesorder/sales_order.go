package salesorder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/pkg/errs"
)

var ErrSalesOrderIsNotConstructed = errors.New("SalesOrder must be created via Create or Load")

// CreateRequest is the untrusted input for a new order. Line item variants
// must already be resolved from the catalog.
type CreateRequest struct {
	AccountID       string
	OrderName       string
	OrderNumber     int
	OrderDate       string
	Customer        CustomerProps
	ShippingAddress AddressProps
	BillingAddress  AddressProps
	LineItems       []lineitem.CreateRequest
}

// SalesOrder is the aggregate root. Line items are only changed through it.
type SalesOrder struct {
	id              kernel.UUID
	accountID       kernel.AccountID
	orderName       string
	orderNumber     kernel.OrderNumber
	orderDate       OrderDate
	status          Status
	customer        Customer
	shippingAddress Address
	billingAddress  Address
	lineItems       []*lineitem.SalesLineItem
	createdAt       time.Time
	updatedAt       time.Time
	version         int

	domainEvents  []DomainEvent
	isConstructed bool
}

// Create validates every field and every line item before failing. The error
// is one InvalidSalesOrder whose Inner lists the field failures first and then
// one InvalidLineItem per bad line item.
func Create(req CreateRequest) (*SalesOrder, error) {
	now := timestamp()
	o := &SalesOrder{
		id:            kernel.NewUUID(),
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	lineItems, lineItemsErr := lineitem.CreateAll(req.LineItems)
	failures := []error{
		o.setAccountID(req.AccountID),
		o.setOrderName(req.OrderName),
		o.setOrderNumber(req.OrderNumber),
		o.setOrderDate(req.OrderDate),
		o.setCustomer(req.Customer),
		o.setShippingAddress(req.ShippingAddress),
		o.setBillingAddress(req.BillingAddress),
	}
	failures = append(failures, errs.Children(lineItemsErr)...)

	if err := errs.Collect(errs.InvalidSalesOrder, "failed to create sales order", req, failures...); err != nil {
		return nil, err
	}
	o.lineItems = lineItems

	flagged := 0
	for _, li := range lineItems {
		if li.IsFlagged() {
			flagged++
		}
	}
	o.recordEvent(OrderPlaced{
		OrderID:      o.id,
		AccountID:    o.accountID.String(),
		OrderNumber:  o.orderNumber.Value(),
		OrderName:    o.orderName,
		LineItems:    len(lineItems),
		FlaggedItems: flagged,
		At:           now,
	})
	return o, nil
}

// Load rebuilds an order from its document. Timestamps are kept as stored and
// no events are recorded.
func Load(doc Document) (*SalesOrder, error) {
	o := &SalesOrder{
		orderName:     doc.OrderName,
		createdAt:     doc.CreatedAt,
		updatedAt:     doc.UpdatedAt,
		version:       doc.Version,
		isConstructed: true,
	}

	lineItems, lineItemsErr := lineitem.LoadAll(doc.LineItems)
	failures := []error{
		o.setID(doc.ID),
		o.setAccountID(doc.AccountID),
		o.setOrderNumber(doc.OrderNumber),
		o.setOrderDate(doc.OrderDate),
		o.setStatus(doc.OrderStatus),
		o.setCustomer(doc.Customer),
		o.setShippingAddress(doc.ShippingAddress),
		o.setBillingAddress(doc.BillingAddress),
		o.checkTimestamps(),
	}
	failures = append(failures, errs.Children(lineItemsErr)...)

	if err := errs.Collect(errs.FailedToLoadSalesOrder,
		fmt.Sprintf("failed to load sales order %s", doc.ID), doc, failures...); err != nil {
		return nil, err
	}
	o.lineItems = lineItems
	return o, nil
}

func (o *SalesOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrSalesOrderIsNotConstructed
	}
	return nil
}

func (o *SalesOrder) ID() kernel.UUID {
	return o.id
}

func (o *SalesOrder) AccountID() kernel.AccountID {
	return o.accountID
}

func (o *SalesOrder) OrderName() string {
	return o.orderName
}

func (o *SalesOrder) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

func (o *SalesOrder) OrderDate() OrderDate {
	return o.orderDate
}

func (o *SalesOrder) Status() Status {
	return o.status
}

func (o *SalesOrder) Customer() Customer {
	return o.customer
}

func (o *SalesOrder) ShippingAddress() Address {
	return o.shippingAddress
}

func (o *SalesOrder) BillingAddress() Address {
	return o.billingAddress
}

func (o *SalesOrder) LineItems() []*lineitem.SalesLineItem {
	return slices.Clone(o.lineItems)
}

// LineItem finds a line item by id.
func (o *SalesOrder) LineItem(id kernel.UUID) (*lineitem.SalesLineItem, bool) {
	for _, li := range o.lineItems {
		if li.ID().IsEqual(id) {
			return li, true
		}
	}
	return nil, false
}

func (o *SalesOrder) IsFlagged() bool {
	return slices.ContainsFunc(o.lineItems, (*lineitem.SalesLineItem).IsFlagged)
}

func (o *SalesOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *SalesOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the persisted revision the order was loaded at; zero for new orders.
func (o *SalesOrder) Version() int {
	return o.version
}

// UpdateShippingAddress replaces the shipping address. An invalid address
// fails with InvalidShippingAddress wrapping the InvalidAddress report and the
// order is left unchanged.
func (o *SalesOrder) UpdateShippingAddress(props AddressProps) error {
	address, err := NewAddress(props)
	if err != nil {
		return errs.NewDomainErrorWithCause(errs.InvalidShippingAddress,
			fmt.Sprintf("failed to update shipping address of order %s", o.id), props, err)
	}

	o.shippingAddress = address
	o.touch()
	o.recordEvent(ShippingAddressUpdated{
		OrderID: o.id,
		Address: address.Props(),
		At:      o.updatedAt,
	})
	return nil
}

// UpdatePersonalization replaces the personalization of one line item. An
// unknown line item fails with LineItemNotFound; a rejected personalization
// is returned exactly as the line item reported it.
func (o *SalesOrder) UpdatePersonalization(lineItemID kernel.UUID, props []personalization.Property) error {
	li, ok := o.LineItem(lineItemID)
	if !ok {
		return errs.NewDomainErrorWithCause(errs.LineItemNotFound,
			fmt.Sprintf("order %s has no line item %s", o.id, lineItemID), lineItemID.String(),
			errs.NewObjectNotFoundError("lineItemId", lineItemID))
	}

	if err := li.UpdatePersonalization(props); err != nil {
		return err
	}

	o.touch()
	event := PersonalizationUpdated{
		OrderID:    o.id,
		LineItemID: li.ID().String(),
		LineNumber: li.LineNumber().Value(),
		Properties: make([]lineitem.PropertyDocument, 0, len(props)),
		At:         o.updatedAt,
	}
	for _, p := range props {
		event.Properties = append(event.Properties, lineitem.PropertyDocument{Name: p.Name, Value: p.Value})
	}
	o.recordEvent(event)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *SalesOrder) DomainEvents() []DomainEvent {
	return slices.Clone(o.domainEvents)
}

func (o *SalesOrder) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *SalesOrder) recordEvent(event DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

// touch moves updatedAt forward, never back, even if the clock does.
func (o *SalesOrder) touch() {
	now := timestamp()
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Microsecond)
	}
	o.updatedAt = now
}

func (o *SalesOrder) setID(raw string) error {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return errs.NewDomainErrorWithCause(errs.InvalidOrderID, "order id is invalid", raw,
			errs.NewValueIsInvalidErrorWithCause("id", err))
	}
	o.id = id
	return nil
}

func (o *SalesOrder) setAccountID(raw string) error {
	accountID, err := kernel.NewAccountID(raw)
	if err != nil {
		return err
	}
	o.accountID = accountID
	return nil
}

func (o *SalesOrder) setOrderName(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("orderName")
	}
	o.orderName = raw
	return nil
}

func (o *SalesOrder) setOrderNumber(raw int) error {
	number, err := kernel.NewOrderNumber(raw)
	if err != nil {
		return err
	}
	o.orderNumber = number
	return nil
}

func (o *SalesOrder) setOrderDate(raw string) error {
	date, err := ParseOrderDate(raw)
	if err != nil {
		return err
	}
	o.orderDate = date
	return nil
}

func (o *SalesOrder) setStatus(raw string) error {
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *SalesOrder) setCustomer(props CustomerProps) error {
	customer, err := NewCustomer(props)
	if err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *SalesOrder) setShippingAddress(props AddressProps) error {
	address, err := NewAddress(props)
	if err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *SalesOrder) setBillingAddress(props AddressProps) error {
	address, err := NewAddress(props)
	if err != nil {
		return err
	}
	o.billingAddress = address
	return nil
}

func (o *SalesOrder) checkTimestamps() error {
	var failures []error
	if o.createdAt.IsZero() {
		failures = append(failures, errs.NewValueIsRequiredError("createdAt"))
	}
	if o.updatedAt.IsZero() {
		failures = append(failures, errs.NewValueIsRequiredError("updatedAt"))
	}
	return errs.Collect(errs.InvalidDate, "order timestamps are invalid", nil, failures...)
}

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
