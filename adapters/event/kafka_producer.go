package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	writer messageWriter
	logger logger.Logger
}

// NewEventPublisher returns a Kafka backed publisher, or a no-op one when no
// brokers are configured.
func NewEventPublisher(cfg config.Config, log logger.Logger) service.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("Kafka brokers not configured, entity events disabled")
		return service.NewNopPublisher()
	}
	return NewKafkaProducerClient(cfg, log)
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) *KafkaProducerClient {
	l := log.With(zap.String("topic", cfg.Kafka.Topic))
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.Hash{},
		Async:    true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				l.Error("Failed to deliver entity events", err, zap.Int("count", len(messages)))
			}
		},
	}

	l.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", cfg.Kafka.Brokers))
	return &KafkaProducerClient{writer: writer, logger: l}
}

// Publish keys messages by entity id so changes to one document stay in
// order on a single partition.
func (c *KafkaProducerClient) Publish(ctx context.Context, evt service.EntityEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal entity event: %w", err)
	}
	return c.writer.WriteMessages(ctx, kafka.Message{Key: []byte(evt.ID), Value: payload})
}

func (c *KafkaProducerClient) Close() error {
	if err := c.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	c.logger.Info("Closed Kafka producer")
	return nil
}
