// Package kafka publishes charge events to the message hub over Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"charges/internal/config"
	"charges/internal/events"
	"charges/internal/port"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher routes each event type to its configured topic.
type Publisher struct {
	producer sarama.SyncProducer
	topics   map[events.Type]string
	logger   *zap.Logger
}

// NewPublisher connects a synchronous producer to the configured brokers.
func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) (*Publisher, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForAll
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Partitioner = sarama.NewHashPartitioner
	producerConfig.ClientID = cfg.ClientID

	producer, err := sarama.NewSyncProducer(cfg.Brokers, producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, cfg.Topics, logger), nil
}

// NewPublisherWithProducer wraps an existing producer. topics maps event type names to topic names.
func NewPublisherWithProducer(producer sarama.SyncProducer, topics map[string]string, logger *zap.Logger) *Publisher {
	mapped := make(map[events.Type]string, len(topics))
	for eventType, topic := range topics {
		mapped[events.Type(eventType)] = topic
	}
	return &Publisher{producer: producer, topics: mapped, logger: logger}
}

// Publish sends event keyed by event.Key so events of one sender or charge stay ordered.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	topic, ok := p.topics[event.Type]
	if !ok {
		return fmt.Errorf("unknown event type '%s', no topic mapped", event.Type)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.Type, err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.Key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to kafka topic %s: %w", topic, err)
	}

	p.logger.Debug("published event",
		zap.String("topic", topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("event_type", string(event.Type)),
		zap.String("key", event.Key),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
