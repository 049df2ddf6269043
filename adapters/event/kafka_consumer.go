package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jpillora/backoff"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	defaultRetryMin = 500 * time.Millisecond
	defaultRetryMax = 30 * time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventHandler func(ctx context.Context, evt service.EntityEvent) error

type KafkaConsumerClient struct {
	reader   messageReader
	logger   logger.Logger
	retryMin time.Duration
	retryMax time.Duration
}

func NewKafkaConsumerClient(cfg config.Config, log logger.Logger) (*KafkaConsumerClient, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka brokers are not configured")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	l := log.With(zap.String("topic", cfg.Kafka.Topic), zap.String("group_id", cfg.Kafka.GroupID))
	return &KafkaConsumerClient{reader: reader, logger: l, retryMin: defaultRetryMin, retryMax: defaultRetryMax}, nil
}

// Run hands every entity event to handle until ctx is done. A message is
// committed once handled, or when it can never be handled: undecodable
// payloads and events handle rejects as invalid input. Any other failure is
// retried with backoff on the same message. Commits are cumulative per
// partition, so nothing after a failing message may be committed first.
func (c *KafkaConsumerClient) Run(ctx context.Context, handle EventHandler) error {
	c.logger.Info("Worker listening for entity events")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		fields := []zap.Field{zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset), zap.ByteString("key", msg.Key)}

		var evt service.EntityEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			c.logger.Warn("Skipping undecodable entity event", append(fields, zap.Error(err))...)
			c.commit(ctx, msg)
			continue
		}

		if err := c.deliver(ctx, evt, handle, fields); err != nil {
			// Stopped mid-retry; the message stays uncommitted and is redelivered.
			c.logger.Info("Stopped while retrying entity event", fields...)
			return nil
		}
		c.commit(ctx, msg)
	}
}

// deliver calls handle until it succeeds or rejects evt as invalid input.
// It returns an error only when ctx is done first.
func (c *KafkaConsumerClient) deliver(ctx context.Context, evt service.EntityEvent, handle EventHandler, fields []zap.Field) error {
	b := &backoff.Backoff{
		Min:    c.retryMin,
		Max:    c.retryMax,
		Factor: 2,
		Jitter: true,
	}
	for {
		err := handle(ctx, evt)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperror.ErrInvalidInput) {
			c.logger.Warn("Skipping invalid entity event", append(fields, zap.Error(err))...)
			return nil
		}

		wait := b.Duration()
		c.logger.Error("Failed to process entity event, retrying", err,
			append(fields, zap.Duration("retry_in", wait), zap.Float64("attempt", b.Attempt()))...)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// commit survives cancellation so the last handled message is not replayed.
func (c *KafkaConsumerClient) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *KafkaConsumerClient) Close() error {
	if err := c.reader.Close(); err != nil {
		return fmt.Errorf("close kafka reader: %w", err)
	}
	c.logger.Info("Closed Kafka consumer")
	return nil
}
