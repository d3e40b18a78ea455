package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/metrics"
)

var (
	ErrSalesOrderAlreadyExists = ports.ErrSalesOrderAlreadyExists
	ErrUnknownVariant          = errors.New("unknown variant")
)

// CreateSalesOrderCommandHandler resolves the requested variants, builds the
// order and stores it.
//
// Example:
//
//	handler := NewCreateSalesOrderCommandHandler(uowFactory, catalog)
//	cmd, _ := NewCreateSalesOrderCommand(params)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateSalesOrderCommandHandler struct {
	uowFactory SalesOrderUoWFactory
	catalog    ports.VariantCatalog
}

func NewCreateSalesOrderCommandHandler(
	uowFactory SalesOrderUoWFactory,
	catalog ports.VariantCatalog,
) CreateSalesOrderCommandHandler {
	return CreateSalesOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle returns the id of the new order. Domain validation failures come
// back as one *errs.DomainError of kind InvalidSalesOrder.
func (h *CreateSalesOrderCommandHandler) Handle(ctx context.Context, cmd CreateSalesOrderCommand) (kernel.UUID, error) {
	id, err := h.handle(ctx, cmd)
	metrics.ObserveCommand("create", err)
	return id, err
}

func (h *CreateSalesOrderCommandHandler) handle(ctx context.Context, cmd CreateSalesOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	order, err := salesorder.Create(salesorder.CreateRequest{
		AccountID:       cmd.AccountID(),
		OrderName:       cmd.OrderName(),
		OrderNumber:     cmd.OrderNumber(),
		OrderDate:       cmd.OrderDate(),
		Customer:        cmd.Customer(),
		ShippingAddress: cmd.ShippingAddress(),
		BillingAddress:  cmd.BillingAddress(),
		LineItems:       h.resolveLineItems(ctx, cmd.LineItems()),
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	countFlags(order)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SalesOrderRepository()
	exists, err := repo.ExistsWithName(ctx, order.AccountID(), order.OrderName())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, fmt.Errorf("%w: account %s already has order %q",
			ErrSalesOrderAlreadyExists, order.AccountID(), order.OrderName())
	}

	if err = repo.Add(ctx, order); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return order.ID(), nil
}

// resolveLineItems looks up every SKU and numbers the lines 1..N. A blank or
// unknown SKU is passed on as the line's VariantErr so salesorder.Create
// reports it alongside every other failure; unknown ones match
// ErrUnknownVariant.
func (h *CreateSalesOrderCommandHandler) resolveLineItems(
	ctx context.Context,
	inputs []LineItemInput,
) []lineitem.CreateRequest {
	requests := make([]lineitem.CreateRequest, 0, len(inputs))
	for i, in := range inputs {
		req := lineitem.CreateRequest{
			LineNumber: i + 1,
			Quantity:   in.Quantity,
			Variant:    lineitem.VariantDocument{SKU: in.SKU},
			Properties: in.Properties,
		}

		if strings.TrimSpace(in.SKU) == "" {
			req.VariantErr = errs.NewValueIsRequiredError(fmt.Sprintf("lineItems[%d].sku", i))
		} else if variant, err := h.catalog.Resolve(ctx, in.SKU); err != nil {
			req.VariantErr = fmt.Errorf("lineItems[%d]: %w: %w", i, ErrUnknownVariant, err)
		} else {
			req.Variant = variant
		}

		requests = append(requests, req)
	}
	return requests
}

func countFlags(order *salesorder.SalesOrder) {
	for _, li := range order.LineItems() {
		for _, flag := range li.Flags() {
			metrics.PersonalizationFlagsTotal.WithLabelValues(string(flag.Type)).Inc()
		}
	}
}
