package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/encoding/avro"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

// EventHandler processes one decoded order event.
type EventHandler interface {
	HandleOrderEvent(ctx context.Context, event domain.Event) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type OrderEventConsumer struct {
	reader  messageReader
	codec   *avro.OrderEventCodec
	handler EventHandler
	logger  logger.Logger
}

func NewOrderEventConsumer(cfg config.KafkaConfig, handler EventHandler, log logger.Logger) (*OrderEventConsumer, error) {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.EventsTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})
	return newOrderEventConsumer(reader, handler, log)
}

func newOrderEventConsumer(reader messageReader, handler EventHandler, log logger.Logger) (*OrderEventConsumer, error) {
	codec, err := avro.NewOrderEventCodec()
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{reader: reader, codec: codec, handler: handler, logger: log}, nil
}

// Start consumes until ctx is cancelled. Undecodable messages and handler
// failures are logged and committed so one bad record cannot stall the group.
func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		c.process(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

func (c *OrderEventConsumer) process(ctx context.Context, msg kafkago.Message) {
	event, err := c.codec.Decode(msg.Value)
	if err != nil {
		c.logger.Warn("skipping undecodable order event",
			logger.Int("partition", msg.Partition),
			logger.Int64("offset", msg.Offset),
			logger.Error(err),
		)
		return
	}

	if err := c.handler.HandleOrderEvent(ctx, event); err != nil {
		c.logger.Error("handle order event failed",
			logger.String("event_id", event.ID),
			logger.Int64("offset", msg.Offset),
			logger.Error(err),
		)
	}
}

func (c *OrderEventConsumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Warn("close kafka reader", logger.Error(err))
	}
}
