// Package outboxrepo stores domain events in the outbox_messages table until
// the relay has published them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxMessageDTO is one outbox row. Sequence is assigned by the database and
// preserves insertion order for events that share a timestamp.
type OutboxMessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Sequence    int64          `gorm:"type:bigserial;->;index"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null;index"`
	EventType   string         `gorm:"not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(event salesorder.DomainEvent) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessageDTO{}, err
	}

	return OutboxMessageDTO{
		ID:          uuid.New(),
		AggregateID: event.AggregateID().Bytes(),
		EventType:   event.EventType(),
		Payload:     datatypes.JSON(payload),
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
