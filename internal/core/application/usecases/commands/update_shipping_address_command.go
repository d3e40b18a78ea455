package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/guard"
)

var ErrUpdateShippingAddressCommandIsNotConstructed = errors.New(
	"UpdateShippingAddressCommand must be created via NewUpdateShippingAddressCommand constructor",
)

// UpdateShippingAddressCommand replaces the shipping address of an order.
// The address itself is validated by the aggregate.
type UpdateShippingAddressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address salesorder.AddressProps

	guard guard.ConstructorGuard
}

func NewUpdateShippingAddressCommand(
	orderID kernel.UUID,
	address salesorder.AddressProps,
) (UpdateShippingAddressCommand, error) {
	cmd := UpdateShippingAddressCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateShippingAddressCommand{}, err
	}

	return cmd, nil
}

func (c UpdateShippingAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippingAddressCommandIsNotConstructed)
}

func (c UpdateShippingAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateShippingAddressCommand) Address() salesorder.AddressProps {
	return c.address
}

func (c *UpdateShippingAddressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
