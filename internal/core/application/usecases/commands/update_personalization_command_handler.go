package commands

import (
	"context"

	"sales/internal/pkg/metrics"
)

// UpdatePersonalizationCommandHandler applies corrected personalization to a
// flagged line item. A rejected update leaves the stored order untouched and
// returns the InvalidPersonalization error with its flags.
type UpdatePersonalizationCommandHandler struct {
	uowFactory SalesOrderUoWFactory
}

func NewUpdatePersonalizationCommandHandler(uowFactory SalesOrderUoWFactory) UpdatePersonalizationCommandHandler {
	return UpdatePersonalizationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdatePersonalizationCommandHandler) Handle(ctx context.Context, cmd UpdatePersonalizationCommand) error {
	err := h.handle(ctx, cmd)
	metrics.ObserveCommand("update_personalization", err)
	return err
}

func (h *UpdatePersonalizationCommandHandler) handle(ctx context.Context, cmd UpdatePersonalizationCommand) error {
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

	if err = order.UpdatePersonalization(cmd.LineItemID(), cmd.Properties()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
