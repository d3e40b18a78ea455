package commands

import (
	"errors"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrRelayOutboxMessagesCommandIsNotConstructed = errors.New(
	"RelayOutboxMessagesCommand must be created via NewRelayOutboxMessagesCommand constructor",
)

const maxRelayBatchSize = 1000

type RelayOutboxMessagesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxMessagesCommand(batchSize int) (RelayOutboxMessagesCommand, error) {
	if batchSize < 1 || batchSize > maxRelayBatchSize {
		return RelayOutboxMessagesCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxRelayBatchSize)
	}

	return RelayOutboxMessagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxMessagesCommandIsNotConstructed)
}

func (c RelayOutboxMessagesCommand) BatchSize() int {
	return c.batchSize
}
