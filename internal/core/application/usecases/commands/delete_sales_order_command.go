package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrDeleteSalesOrderCommandIsNotConstructed = errors.New(
	"DeleteSalesOrderCommand must be created via NewDeleteSalesOrderCommand constructor",
)

type DeleteSalesOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteSalesOrderCommand(orderID kernel.UUID) (DeleteSalesOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteSalesOrderCommand{}, err
	}

	return DeleteSalesOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteSalesOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSalesOrderCommandIsNotConstructed)
}

func (c DeleteSalesOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
