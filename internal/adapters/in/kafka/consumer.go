// Package kafka consumes order placed messages from an upstream storefront
// and turns each into a CreateSalesOrderCommand.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/metrics"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type orderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateSalesOrderCommand) (kernel.UUID, error)
}

// OrderConsumer reads partition 0 of the inbound topic from the newest
// offset. A message that cannot become an order is logged and skipped.
type OrderConsumer struct {
	consumer sarama.Consumer
	topic    string
	creator  orderCreator
	logger   *zap.SugaredLogger
}

// NewOrderConsumer connects to brokers. clientID, when set, identifies this
// service to the brokers.
func NewOrderConsumer(
	brokers []string,
	clientID string,
	topic string,
	creator orderCreator,
	logger *zap.SugaredLogger,
) (*OrderConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true
	if clientID != "" {
		config.ClientID = clientID
	}

	consumer, err := sarama.NewConsumer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return NewOrderConsumerWithClient(consumer, topic, creator, logger), nil
}

func NewOrderConsumerWithClient(
	consumer sarama.Consumer,
	topic string,
	creator orderCreator,
	logger *zap.SugaredLogger,
) *OrderConsumer {
	return &OrderConsumer{
		consumer: consumer,
		topic:    topic,
		creator:  creator,
		logger:   logger.With("component", "order_consumer", "topic", topic),
	}
}

// Start blocks until ctx is cancelled or the partition is closed.
func (c *OrderConsumer) Start(ctx context.Context) error {
	partitionConsumer, err := c.consumer.ConsumePartition(c.topic, 0, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.topic, err)
	}
	defer func() {
		if err := partitionConsumer.Close(); err != nil {
			c.logger.Warnw("failed to close partition consumer", "error", err)
		}
	}()

	c.logger.Info("Order consumer started")
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Order consumer stopping")
			return ctx.Err()
		case consumerErr, ok := <-partitionConsumer.Errors():
			if ok {
				c.logger.Errorw("kafka consumer error", "error", consumerErr)
			}
		case message, ok := <-partitionConsumer.Messages():
			if !ok {
				return nil
			}
			c.consume(ctx, message)
		}
	}
}

func (c *OrderConsumer) Close() error {
	return c.consumer.Close()
}

func (c *OrderConsumer) consume(ctx context.Context, message *sarama.ConsumerMessage) {
	log := c.logger.With("partition", message.Partition, "offset", message.Offset)

	orderID, err := c.process(ctx, message.Value)
	switch {
	case err == nil:
		metrics.KafkaMessagesTotal.WithLabelValues("success").Inc()
		log.Infow("order created", "orderId", orderID.String())
	case errors.Is(err, commands.ErrSalesOrderAlreadyExists):
		metrics.KafkaMessagesTotal.WithLabelValues("duplicate").Inc()
		log.Infow("order already exists, message skipped", "error", err)
	case errs.KindOf(err) != "", errors.Is(err, commands.ErrUnknownVariant):
		metrics.KafkaMessagesTotal.WithLabelValues("rejected").Inc()
		log.Warnw("order rejected", "kind", errs.KindOf(err), "error", err)
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		metrics.KafkaMessagesTotal.WithLabelValues("invalid").Inc()
		log.Warnw("malformed order message", "error", err)
	default:
		metrics.KafkaMessagesTotal.WithLabelValues("error").Inc()
		log.Errorw("failed to process order message", "error", err)
	}
}

func (c *OrderConsumer) process(ctx context.Context, value []byte) (kernel.UUID, error) {
	var msg OrderMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("message", err)
	}

	cmd, err := commands.NewCreateSalesOrderCommand(msg.toParams())
	if err != nil {
		return kernel.UUID{}, err
	}

	return c.creator.Handle(ctx, cmd)
}
