package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxStore reads and acknowledges pending outbox messages. Messages are
// written by the unit of work, never through this interface.
type OutboxStore interface {
	// Unpublished returns up to limit pending messages, oldest first.
	Unpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error

	// PurgePublished deletes messages published before the cutoff and
	// returns how many were removed.
	PurgePublished(ctx context.Context, before time.Time) (int64, error)
}

// EventPublisher delivers an outbox message to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
