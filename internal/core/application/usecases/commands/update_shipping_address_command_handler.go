package commands

import (
	"context"

	"sales/internal/pkg/metrics"
)

// UpdateShippingAddressCommandHandler loads the order, changes its shipping
// address and saves it under the version it was loaded at.
type UpdateShippingAddressCommandHandler struct {
	uowFactory SalesOrderUoWFactory
}

func NewUpdateShippingAddressCommandHandler(uowFactory SalesOrderUoWFactory) UpdateShippingAddressCommandHandler {
	return UpdateShippingAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateShippingAddressCommandHandler) Handle(ctx context.Context, cmd UpdateShippingAddressCommand) error {
	err := h.handle(ctx, cmd)
	metrics.ObserveCommand("update_shipping_address", err)
	return err
}

func (h *UpdateShippingAddressCommandHandler) handle(ctx context.Context, cmd UpdateShippingAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SalesOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.UpdateShippingAddress(cmd.Address()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
