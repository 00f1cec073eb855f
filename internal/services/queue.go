package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"vichaarmanthan/mock-interview/internal/config"
	"vichaarmanthan/mock-interview/internal/metrics"
)

// TopicResumeUpload carries "a resume was uploaded for (email, role)"
// notifications to the out-of-process workers.
const TopicResumeUpload = "resume-upload"

// QueueProducer publishes work notifications to a named topic. Publish
// never fails from the caller's point of view: accepting an upload must
// not depend on broker health, so every failure mode is logged and
// swallowed here.
type QueueProducer interface {
	Publish(ctx context.Context, topic string, payload []byte)
	Disabled() bool
	Close() error
}

type queueProducer struct {
	client   *redis.Client
	disabled bool
}

// NewQueueProducer connects to the broker once at construction. If that
// attempt fails the producer starts in disabled mode instead of taking the
// process down: uploads still succeed, messages are dropped and counted
// until an operator intervenes. There is no reconnection loop.
func NewQueueProducer(cfg config.RedisConfig) QueueProducer {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Queue broker unreachable, producer disabled: %v\n", err)
		client.Close()
		return &queueProducer{disabled: true}
	}

	log.Println("✅ Queue producer connected")
	return &queueProducer{client: client}
}

// Publish implements QueueProducer.
func (p *queueProducer) Publish(ctx context.Context, topic string, payload []byte) {
	if p.disabled {
		log.Printf("⚠️  Queue producer disabled, dropping message for topic %s\n", topic)
		metrics.QueueMessagesDropped.WithLabelValues(topic, "disabled").Inc()
		return
	}

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{"payload": payload},
	}).Err()
	if err != nil {
		log.Printf("⚠️  Failed to publish to topic %s: %v\n", topic, err)
		metrics.QueueMessagesDropped.WithLabelValues(topic, "publish_failed").Inc()
		return
	}

	metrics.QueueMessagesPublished.WithLabelValues(topic).Inc()
}

// Disabled implements QueueProducer.
func (p *queueProducer) Disabled() bool {
	return p.disabled
}

// Close implements QueueProducer.
func (p *queueProducer) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}
