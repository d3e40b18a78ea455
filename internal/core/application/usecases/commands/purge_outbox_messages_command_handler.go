package commands

import (
	"context"
	"time"

	"sales/internal/core/ports"
)

type PurgeOutboxMessagesCommandHandler struct {
	store ports.OutboxStore
	now   func() time.Time
}

func NewPurgeOutboxMessagesCommandHandler(store ports.OutboxStore) PurgeOutboxMessagesCommandHandler {
	return PurgeOutboxMessagesCommandHandler{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the number of messages removed.
func (h *PurgeOutboxMessagesCommandHandler) Handle(ctx context.Context, cmd PurgeOutboxMessagesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.store.PurgePublished(ctx, h.now().Add(-cmd.Retention()))
}
