package commands

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/ports"
	"sales/internal/pkg/metrics"
)

type RelayOutboxMessagesCommandHandler struct {
	store     ports.OutboxStore
	publisher ports.EventPublisher
	now       func() time.Time
}

func NewRelayOutboxMessagesCommandHandler(
	store ports.OutboxStore,
	publisher ports.EventPublisher,
) RelayOutboxMessagesCommandHandler {
	return RelayOutboxMessagesCommandHandler{
		store:     store,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle publishes pending messages oldest first and returns how many were
// delivered. It stops at the first failed publish so a later event for the
// same order is never delivered ahead of an earlier one.
func (h *RelayOutboxMessagesCommandHandler) Handle(ctx context.Context, cmd RelayOutboxMessagesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.store.Unpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	for _, msg := range messages {
		if err := h.publisher.Publish(ctx, msg); err != nil {
			metrics.OutboxMessagesTotal.WithLabelValues("failed").Inc()
			return published, fmt.Errorf("publish outbox message %s (%s): %w", msg.ID, msg.EventType, err)
		}

		if err := h.store.MarkPublished(ctx, msg.ID, h.now()); err != nil {
			return published, fmt.Errorf("mark outbox message %s published: %w", msg.ID, err)
		}

		metrics.OutboxMessagesTotal.WithLabelValues("published").Inc()
		published++
	}

	return published, nil
}
