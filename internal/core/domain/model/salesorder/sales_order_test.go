package salesorder_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("builds an open order with its line items", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)

		order, err := salesorder.Create(validRequest())

		require.NoError(t, err)
		require.NoError(t, order.Validate())
		require.NoError(t, order.ID().Validate())
		assert.Equal(t, accountID, order.AccountID().String())
		assert.Equal(t, "#1001", order.OrderName())
		assert.Equal(t, 1001, order.OrderNumber().Value())
		assert.Equal(t, salesorder.Open, order.Status())
		assert.Equal(t, "jane@example.com", order.Customer().Email())
		assert.Equal(t, shippingAddress(), order.ShippingAddress().Props())
		assert.Equal(t, shippingAddress(), order.BillingAddress().Props())
		require.Len(t, order.LineItems(), 2)
		assert.Equal(t, 1, order.LineItems()[0].LineNumber().Value())
		assert.Equal(t, 2, order.LineItems()[1].LineNumber().Value())
		assert.False(t, order.IsFlagged())
		assert.Equal(t, 0, order.Version())

		assert.True(t, order.CreatedAt().After(before))
		assert.Equal(t, order.CreatedAt(), order.UpdatedAt())
		assert.Equal(t, time.UTC, order.CreatedAt().Location())
		assert.Equal(t, order.CreatedAt().Truncate(time.Microsecond), order.CreatedAt())
	})

	t.Run("records OrderPlaced", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)

		events := order.DomainEvents()

		require.Len(t, events, 1)
		placed, ok := events[0].(salesorder.OrderPlaced)
		require.True(t, ok)
		assert.Equal(t, salesorder.EventOrderPlaced, placed.EventType())
		assert.True(t, order.ID().IsEqual(placed.AggregateID()))
		assert.Equal(t, 1001, placed.OrderNumber)
		assert.Equal(t, 2, placed.LineItems)
		assert.Equal(t, 0, placed.FlaggedItems)
		assert.Equal(t, order.CreatedAt(), placed.OccurredAt())

		order.ClearDomainEvents()
		assert.Empty(t, order.DomainEvents())
	})

	t.Run("accepts flagged personalization", func(t *testing.T) {
		req := validRequest()
		req.LineItems[1].Properties = []personalization.Property{{Name: "name", Value: "Ada 2"}}

		order, err := salesorder.Create(req)

		require.NoError(t, err)
		assert.True(t, order.IsFlagged())
		assert.False(t, order.LineItems()[0].IsFlagged())
		assert.Equal(t, []personalization.Flag{
			personalization.NewBadCharacterFlag("name", "[A-Za-z ]*"),
		}, order.LineItems()[1].Flags())
		placed := order.DomainEvents()[0].(salesorder.OrderPlaced)
		assert.Equal(t, 1, placed.FlaggedItems)
	})

	t.Run("accepts an order without line items", func(t *testing.T) {
		req := validRequest()
		req.LineItems = nil

		order, err := salesorder.Create(req)

		require.NoError(t, err)
		assert.Empty(t, order.LineItems())
	})

	t.Run("accepts duplicate line numbers", func(t *testing.T) {
		req := validRequest()
		req.LineItems[1].LineNumber = 1

		order, err := salesorder.Create(req)

		require.NoError(t, err)
		require.Len(t, order.LineItems(), 2)
		assert.False(t, order.LineItems()[0].ID().IsEqual(order.LineItems()[1].ID()))
	})

	t.Run("reports one failure per invalid line item", func(t *testing.T) {
		req := validRequest()
		req.LineItems = append(req.LineItems, lineItemRequest(3, "Bo"))
		req.LineItems[0].Quantity = 0
		req.LineItems[2].Variant.SKU = ""

		_, err := salesorder.Create(req)

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.InvalidSalesOrder, domainErr.Kind)
		require.Len(t, domainErr.Inner, 2)
		assert.Equal(t, errs.InvalidLineItem, errs.KindOf(domainErr.Inner[0]))
		assert.Contains(t, domainErr.Inner[0].Error(), "line item 1")
		assert.Equal(t, errs.InvalidLineItem, errs.KindOf(domainErr.Inner[1]))
		assert.Contains(t, domainErr.Inner[1].Error(), "line item 3")
		assert.Equal(t, req, domainErr.Value)
	})

	t.Run("reports field and line item failures together", func(t *testing.T) {
		req := validRequest()
		req.AccountID = "nope"
		req.OrderNumber = 0
		req.OrderDate = "yesterday"
		req.Customer.Email = ""
		req.ShippingAddress.City = ""
		req.BillingAddress.CountryCode = "ZZ"
		req.LineItems[1].Quantity = -1

		_, err := salesorder.Create(req)

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.InvalidSalesOrder, domainErr.Kind)
		kinds := make([]errs.Kind, 0, len(domainErr.Inner))
		for _, inner := range domainErr.Inner {
			kinds = append(kinds, errs.KindOf(inner))
		}
		assert.Equal(t, []errs.Kind{
			errs.InvalidAccountID,
			errs.InvalidNumber,
			errs.InvalidDate,
			errs.InvalidCustomer,
			errs.InvalidAddress,
			errs.InvalidAddress,
			errs.InvalidLineItem,
		}, kinds)
		require.ErrorIs(t, err, errs.InvalidQuantity)
	})

	t.Run("reports a blank order name with the other failures", func(t *testing.T) {
		req := validRequest()
		req.OrderName = "  "
		req.Customer.Email = "not-an-email"

		_, err := salesorder.Create(req)

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.InvalidSalesOrder, domainErr.Kind)
		require.Len(t, domainErr.Inner, 2)
		require.ErrorIs(t, domainErr.Inner[0], errs.ErrValueIsRequired)
		assert.Contains(t, domainErr.Inner[0].Error(), "orderName")
		assert.Equal(t, errs.InvalidCustomer, errs.KindOf(domainErr.Inner[1]))
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trips through the document", func(t *testing.T) {
		req := validRequest()
		req.LineItems[0].Properties = []personalization.Property{{Name: "name", Value: "Far Too Long Name"}}
		order, err := salesorder.Create(req)
		require.NoError(t, err)
		doc := salesorder.ToDocument(order)

		loaded, err := salesorder.Load(doc)

		require.NoError(t, err)
		assert.Equal(t, doc, salesorder.ToDocument(loaded))
		assert.True(t, order.ID().IsEqual(loaded.ID()))
		assert.Equal(t, order.CreatedAt(), loaded.CreatedAt())
		assert.Equal(t, order.UpdatedAt(), loaded.UpdatedAt())
		assert.True(t, loaded.LineItems()[0].IsFlagged())
		assert.Empty(t, loaded.DomainEvents())
	})

	t.Run("keeps stored status, timestamps and version", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		doc := salesorder.ToDocument(order)
		doc.OrderStatus = "Recalled"
		doc.CreatedAt = time.Date(2023, 1, 2, 3, 4, 5, 6000, time.UTC)
		doc.UpdatedAt = time.Date(2023, 6, 7, 8, 9, 10, 11000, time.UTC)
		doc.Version = 4

		loaded, err := salesorder.Load(doc)

		require.NoError(t, err)
		assert.Equal(t, salesorder.Recalled, loaded.Status())
		assert.Equal(t, doc.CreatedAt, loaded.CreatedAt())
		assert.Equal(t, doc.UpdatedAt, loaded.UpdatedAt())
		assert.Equal(t, 4, loaded.Version())
	})

	t.Run("recomputes flags instead of trusting the stored ones", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		doc := salesorder.ToDocument(order)
		doc.LineItems[0].Flags = []lineitem.FlagDocument{{Type: "MissingPersonalization", Property: "name"}}

		loaded, err := salesorder.Load(doc)

		require.NoError(t, err)
		assert.False(t, loaded.IsFlagged())
	})

	t.Run("reports corrupted fields and line items together", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		doc := salesorder.ToDocument(order)
		doc.ID = "garbage"
		doc.OrderStatus = "Lost"
		doc.CreatedAt = time.Time{}
		doc.LineItems[0].ID = ""
		doc.LineItems[1].Quantity = 0

		_, err = salesorder.Load(doc)

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.FailedToLoadSalesOrder, domainErr.Kind)
		kinds := make([]errs.Kind, 0, len(domainErr.Inner))
		for _, inner := range domainErr.Inner {
			kinds = append(kinds, errs.KindOf(inner))
		}
		assert.Equal(t, []errs.Kind{
			errs.InvalidOrderID,
			errs.InvalidStatus,
			errs.InvalidDate,
			errs.FailedToLoadLineItem,
			errs.FailedToLoadLineItem,
		}, kinds)
	})
}

func TestSalesOrder_UpdateShippingAddress(t *testing.T) {
	t.Run("replaces the address and advances updatedAt", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		order.ClearDomainEvents()
		createdAt := order.CreatedAt()
		props := shippingAddress()
		props.Line1 = "500 Howard St"

		err = order.UpdateShippingAddress(props)

		require.NoError(t, err)
		assert.Equal(t, props, order.ShippingAddress().Props())
		assert.Equal(t, shippingAddress(), order.BillingAddress().Props())
		assert.Equal(t, createdAt, order.CreatedAt())
		assert.True(t, order.UpdatedAt().After(createdAt))

		events := order.DomainEvents()
		require.Len(t, events, 1)
		updated, ok := events[0].(salesorder.ShippingAddressUpdated)
		require.True(t, ok)
		assert.Equal(t, props, updated.Address)
		assert.Equal(t, order.UpdatedAt(), updated.OccurredAt())
	})

	t.Run("updatedAt never moves backwards", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		doc := salesorder.ToDocument(order)
		doc.UpdatedAt = time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)
		loaded, err := salesorder.Load(doc)
		require.NoError(t, err)

		require.NoError(t, loaded.UpdateShippingAddress(shippingAddress()))

		assert.True(t, loaded.UpdatedAt().After(doc.UpdatedAt))
	})

	t.Run("invalid address leaves the order unchanged", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		order.ClearDomainEvents()
		before := salesorder.ToDocument(order)
		props := shippingAddress()
		props.PostalCode = ""

		err = order.UpdateShippingAddress(props)

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.InvalidShippingAddress, domainErr.Kind)
		require.Len(t, domainErr.Inner, 1)
		assert.Equal(t, errs.InvalidAddress, errs.KindOf(domainErr.Inner[0]))
		assert.Equal(t, before, salesorder.ToDocument(order))
		assert.Empty(t, order.DomainEvents())
	})
}

func TestSalesOrder_UpdatePersonalization(t *testing.T) {
	t.Run("updates the matching line item", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		order.ClearDomainEvents()
		target := order.LineItems()[1]
		props := []personalization.Property{{Name: "name", Value: "Grace"}, {Name: "font", Value: "Script"}}

		err = order.UpdatePersonalization(target.ID(), props)

		require.NoError(t, err)
		assert.Equal(t, props, target.Personalization())
		assert.Equal(t, []personalization.Property{{Name: "name", Value: "Jane"}},
			order.LineItems()[0].Personalization())
		assert.True(t, order.UpdatedAt().After(order.CreatedAt()))

		events := order.DomainEvents()
		require.Len(t, events, 1)
		updated, ok := events[0].(salesorder.PersonalizationUpdated)
		require.True(t, ok)
		assert.Equal(t, target.ID().String(), updated.LineItemID)
		assert.Equal(t, 2, updated.LineNumber)
		assert.Equal(t, []lineitem.PropertyDocument{
			{Name: "name", Value: "Grace"},
			{Name: "font", Value: "Script"},
		}, updated.Properties)
	})

	t.Run("unknown line item fails with LineItemNotFound", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		order.ClearDomainEvents()
		before := salesorder.ToDocument(order)
		missing := kernel.NewUUID()

		err = order.UpdatePersonalization(missing, []personalization.Property{{Name: "name", Value: "Grace"}})

		var domainErr *errs.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, errs.LineItemNotFound, domainErr.Kind)
		assert.Equal(t, missing.String(), domainErr.Value)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, before, salesorder.ToDocument(order))
		assert.Empty(t, order.DomainEvents())
	})

	t.Run("rejected personalization is returned unchanged", func(t *testing.T) {
		order, err := salesorder.Create(validRequest())
		require.NoError(t, err)
		order.ClearDomainEvents()
		before := salesorder.ToDocument(order)
		target := order.LineItems()[0]

		err = order.UpdatePersonalization(target.ID(), []personalization.Property{{Name: "font", Value: "Comic"}})

		require.Error(t, err)
		assert.Equal(t, errs.InvalidPersonalization, errs.KindOf(err))
		rejection, ok := lineitem.RejectionOf(err)
		require.True(t, ok)
		assert.True(t, target.ID().IsEqual(rejection.LineItemID))
		assert.Equal(t, []personalization.Flag{
			personalization.NewMissingFlag("name"),
			personalization.NewInvalidFlag("font", "Comic"),
		}, rejection.Flags)
		assert.Equal(t, before, salesorder.ToDocument(order))
		assert.Empty(t, order.DomainEvents())
	})
}
