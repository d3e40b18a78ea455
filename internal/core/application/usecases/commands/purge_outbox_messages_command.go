package commands

import (
	"errors"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrPurgeOutboxMessagesCommandIsNotConstructed = errors.New(
	"PurgeOutboxMessagesCommand must be created via NewPurgeOutboxMessagesCommand constructor",
)

// PurgeOutboxMessagesCommand removes outbox messages that were published
// longer than retention ago. Unpublished messages are never removed.
type PurgeOutboxMessagesCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeOutboxMessagesCommand(retention time.Duration) (PurgeOutboxMessagesCommand, error) {
	if retention <= 0 {
		return PurgeOutboxMessagesCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}

	return PurgeOutboxMessagesCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxMessagesCommandIsNotConstructed)
}

func (c PurgeOutboxMessagesCommand) Retention() time.Duration {
	return c.retention
}
