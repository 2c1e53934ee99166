// Package events publishes domain events. Delivery is best effort: a failed publish is
// logged and never fails the operation that produced it.
package events

import (
	"context"

	"freezestore/pkg/logger"
)

const (
	ClientCreated        = "client.created"
	ReservationCreated   = "reservation.created"
	ReservationExtended  = "reservation.extended"
	ReservationCompleted = "reservation.completed"
	ReservationDeleted   = "reservation.deleted"
	SpaceExpiringSoon    = "space.expiring_soon"
)

type Event struct {
	Type    string
	Key     string
	Payload any
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Emit publishes event and logs, rather than returns, any failure.
func Emit(ctx context.Context, p Publisher, log *logger.Logger, event Event) {
	if err := p.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish event", "event_type", event.Type, "key", event.Key, "error", err)
	}
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error { return nil }
func (noopPublisher) Close() error                         { return nil }
