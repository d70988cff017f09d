package kafka

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/encoding/avro"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

const eventTypeHeader = "event_type"

// defaultPublishTimeout caps how long a request waits on the broker.
const defaultPublishTimeout = 5 * time.Second

// syncProducer is the part of *kgo.Client the producer needs.
type syncProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// OrderEventProducer publishes Avro-encoded order events. Records are keyed
// by order id so every event of one order lands on the same partition.
type OrderEventProducer struct {
	client  syncProducer
	codec   *avro.OrderEventCodec
	topic   string
	timeout time.Duration
	logger  logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	log.Info("connecting kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventsTopic),
	)

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventsTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordDeliveryTimeout(defaultPublishTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return newOrderEventProducer(client, cfg.EventsTopic, log)
}

func newOrderEventProducer(client syncProducer, topic string, log logger.Logger) (*OrderEventProducer, error) {
	codec, err := avro.NewOrderEventCodec()
	if err != nil {
		return nil, err
	}
	return &OrderEventProducer{
		client:  client,
		codec:   codec,
		topic:   topic,
		timeout: defaultPublishTimeout,
		logger:  log,
	}, nil
}

func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, event domain.Event) error {
	payload, err := p.codec.Encode(event)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(strconv.FormatInt(event.OrderID, 10)),
		Value:     payload,
		Timestamp: event.OccurredAt,
		Headers:   []kgo.RecordHeader{{Key: eventTypeHeader, Value: []byte(event.Type)}},
	}

	produceCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.ProduceSync(produceCtx, rec).FirstErr(); err != nil {
		p.logger.WithContext(ctx).Error("publish order event failed",
			logger.String("topic", p.topic),
			logger.Int("payload_bytes", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.WithContext(ctx).Debug("order event published",
		logger.String("event_id", event.ID),
		logger.String("event_type", string(event.Type)),
	)
	return nil
}

func (p *OrderEventProducer) Close() {
	p.logger.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
}
