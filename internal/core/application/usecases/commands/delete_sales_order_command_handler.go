package commands

import (
	"context"

	"sales/internal/pkg/metrics"
)

type DeleteSalesOrderCommandHandler struct {
	uowFactory SalesOrderUoWFactory
}

func NewDeleteSalesOrderCommandHandler(uowFactory SalesOrderUoWFactory) DeleteSalesOrderCommandHandler {
	return DeleteSalesOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order. Unknown ids fail with errs.ErrObjectNotFound.
func (h *DeleteSalesOrderCommandHandler) Handle(ctx context.Context, cmd DeleteSalesOrderCommand) error {
	err := h.handle(ctx, cmd)
	metrics.ObserveCommand("delete", err)
	return err
}

func (h *DeleteSalesOrderCommandHandler) handle(ctx context.Context, cmd DeleteSalesOrderCommand) error {
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

	if err := uow.SalesOrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
