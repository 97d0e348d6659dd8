package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/dto"
)

const (
	writeTimeout = 5 * time.Second
	// One event per order placement; the writer must not hold a request
	// waiting for a batch to fill.
	batchSize    = 1
	batchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher sends order events to Kafka. Without configured brokers it only
// logs at debug level.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) *Publisher {
	p := &Publisher{topic: cfg.OrderTopic, logger: logger}
	if !cfg.Enabled() {
		logger.Info("kafka brokers not configured, order events disabled")
		return p
	}

	p.writer = &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.OrderTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		WriteTimeout:           writeTimeout,
		BatchSize:              batchSize,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
	logger.Info("kafka publisher ready", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.OrderTopic))
	return p
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, event dto.OrderCreatedEvent) error {
	if p.writer == nil {
		p.logger.Debug("order event skipped", zap.String("orderId", event.OrderID))
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	// Keyed by order id so all events of one order land on one partition.
	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.CreatedAt,
	}); err != nil {
		return fmt.Errorf("kafka: write to %s: %w", p.topic, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
