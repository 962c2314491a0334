package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"helperhub/internal/helper/domain"
)

// kafkaEnvelope is the JSON shape produced to the events topic. The payload
// carries the event's own fields; name and timestamp are lifted to the
// envelope so consumers can route without decoding the payload.
type kafkaEnvelope struct {
	EventName  string          `json:"event_name"`
	OccurredAt string          `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// KafkaPublisher forwards domain events to a Kafka topic. Subscribe it on
// the bus for each event name that downstream consumers care about.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaPublisher connects a producer to the given brokers.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

// Handle publishes one event. The event name keys the record so per-name
// ordering is preserved within a partition.
func (p *KafkaPublisher) Handle(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventName(), err)
	}
	value, err := json.Marshal(kafkaEnvelope{
		EventName:  event.EventName(),
		OccurredAt: event.EventTime().Format(time.RFC3339Nano),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.EventName()),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event %s: %w", event.EventName(), err)
	}
	return nil
}

// Close flushes and releases the producer.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
