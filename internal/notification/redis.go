package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"helperhub/internal/helper/ports"
)

var sendDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "helperhub_notification_send_duration_ms",
	Help:    "Latency of notification deliveries in milliseconds",
	Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100},
})

const sentKeyPrefix = "notif:sent:"

// Redis queues outbound notifications on a Redis list consumed by the
// delivery worker (external) and keeps a sent-set marker per address so
// HasSentTo works across instances.
type Redis struct {
	client *redis.Client
	queue  string
}

// NewRedis constructs a Redis-backed notification service producing onto the
// given queue key.
func NewRedis(client *redis.Client, queue string) *Redis {
	return &Redis{client: client, queue: queue}
}

type queuedMessage struct {
	Email   string            `json:"email"`
	Subject string            `json:"subject"`
	Body    string            `json:"body"`
	Data    map[string]string `json:"data,omitempty"`
}

func (r *Redis) Send(ctx context.Context, email string, message ports.Message) error {
	start := time.Now()
	defer func() {
		sendDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	payload, err := json.Marshal(queuedMessage{
		Email:   email,
		Subject: message.Subject,
		Body:    message.Body,
		Data:    message.Data,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.queue, payload)
	pipe.Set(ctx, sentKeyPrefix+email, "1", 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("queue notification: %w", err)
	}
	return nil
}

func (r *Redis) HasSentTo(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Exists(ctx, sentKeyPrefix+email).Result()
	if err != nil {
		return false, fmt.Errorf("check sent marker: %w", err)
	}
	return n > 0, nil
}
