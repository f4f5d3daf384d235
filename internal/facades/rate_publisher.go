package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RateKafkaPublisher publishes freshly fetched rate snapshots to Kafka.
type RateKafkaPublisher struct {
	writer MessageWriter
}

// NewRateKafkaWriter builds an async writer for topic on the given brokers.
func NewRateKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver rate snapshots", "count", len(messages), "error", err)
			}
		},
	}
}

// NewRateKafkaPublisher wraps a writer.
func NewRateKafkaPublisher(writer MessageWriter) *RateKafkaPublisher {
	return &RateKafkaPublisher{writer: writer}
}

// Publish sends one snapshot keyed by base currency.
func (p *RateKafkaPublisher) Publish(ctx context.Context, snapshot models.RateSnapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode rate snapshot: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snapshot.Base),
		Value: value,
		Time:  snapshot.FetchedAt,
	})
	if err != nil {
		return fmt.Errorf("publish rate snapshot for %s: %w", snapshot.Base, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *RateKafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopRatePublisher drops every snapshot; used when Kafka is not configured.
type NopRatePublisher struct{}

// Publish implements the publisher contract without side effects.
func (NopRatePublisher) Publish(context.Context, models.RateSnapshot) error { return nil }

// Close does nothing.
func (NopRatePublisher) Close() error { return nil }
