// Package kafka publishes outbox messages to Kafka.
//
// Order placed events go to their own topic; every later change of an order
// goes to the changed topic. Messages are keyed by order id so all events of
// one order land on the same partition in the order they were relayed.
package kafka

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"

	"github.com/IBM/sarama"
)

// Header names attached to every published message.
const (
	HeaderEventType  = "event-type"
	HeaderMessageID  = "message-id"
	HeaderOccurredAt = "occurred-at"
)

// Topics names the destination of each event family.
type Topics struct {
	OrderPlaced  string
	OrderChanged string
}

// EventProducer implements ports.EventPublisher on a sarama SyncProducer.
type EventProducer struct {
	producer sarama.SyncProducer
	topics   Topics
}

// NewEventProducer connects to brokers. Sends wait for all in-sync replicas.
func NewEventProducer(brokers []string, topics Topics) (*EventProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Producer.Retry.Max = 5
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewEventProducerWithClient(producer, topics), nil
}

// NewEventProducerWithClient wraps an existing producer.
func NewEventProducerWithClient(producer sarama.SyncProducer, topics Topics) *EventProducer {
	return &EventProducer{
		producer: producer,
		topics:   topics,
	}
}

// Publish sends msg and blocks until the broker acknowledged it.
func (p *EventProducer) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	topic := p.topicFor(msg.EventType)
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(msg.AggregateID.String()),
		Value: sarama.ByteEncoder(msg.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventType), Value: []byte(msg.EventType)},
			{Key: []byte(HeaderMessageID), Value: []byte(msg.ID.String())},
			{Key: []byte(HeaderOccurredAt), Value: []byte(msg.OccurredAt.UTC().Format(time.RFC3339Nano))},
		},
		Timestamp: msg.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", msg.EventType, topic, err)
	}

	return nil
}

func (p *EventProducer) Close() error {
	return p.producer.Close()
}

var _ ports.EventPublisher = (*EventProducer)(nil)

func (p *EventProducer) topicFor(eventType string) string {
	if eventType == salesorder.EventOrderPlaced {
		return p.topics.OrderPlaced
	}
	return p.topics.OrderChanged
}
