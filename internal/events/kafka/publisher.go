// Package kafka publishes ledger events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mmynk/finapi/internal/events"
)

// Ensure Publisher implements events.Publisher
var _ events.Publisher = (*Publisher)(nil)

// batchTimeout bounds how long a synchronous write waits to fill a batch.
const batchTimeout = 10 * time.Millisecond

// Publisher writes StatementCreated events as JSON, keyed by the owning user
// so that one user's events land on one partition in order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for topic on the given brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           batchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes one event.
func (p *Publisher) Publish(ctx context.Context, event events.StatementCreated) error {
	data, err := encode(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}); err != nil {
		return fmt.Errorf("failed to publish statement %s: %w", event.StatementID, err)
	}
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func encode(event events.StatementCreated) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}
	return data, nil
}
