package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/pkg/guard"
)

var ErrUpdatePersonalizationCommandIsNotConstructed = errors.New(
	"UpdatePersonalizationCommand must be created via NewUpdatePersonalizationCommand constructor",
)

// UpdatePersonalizationCommand replaces the personalization of one line item.
type UpdatePersonalizationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID
	properties []personalization.Property

	guard guard.ConstructorGuard
}

func NewUpdatePersonalizationCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	properties []personalization.Property,
) (UpdatePersonalizationCommand, error) {
	cmd := UpdatePersonalizationCommand{
		properties: properties,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineItemID(lineItemID),
	); err != nil {
		return UpdatePersonalizationCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePersonalizationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePersonalizationCommandIsNotConstructed)
}

func (c UpdatePersonalizationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdatePersonalizationCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c UpdatePersonalizationCommand) Properties() []personalization.Property {
	return c.properties
}

func (c *UpdatePersonalizationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePersonalizationCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}
