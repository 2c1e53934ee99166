package events

import (
	"context"
	"time"

	"freezestore/pkg/kafka"
	"freezestore/pkg/middleware"
)

const schemaVersion = "1"

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
	timeout  time.Duration
}

func NewKafkaPublisher(producer *kafka.Producer, source string, timeout time.Duration) Publisher {
	return &kafkaPublisher{producer: producer, source: source, timeout: timeout}
}

// Publish is detached from the caller's cancellation so a client hanging up does not
// drop an event for a change that was already committed.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Key).
		WithEventType(event.Type).
		WithSource(p.source).
		WithSchemaVersion(schemaVersion).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithValue(event.Payload).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}
