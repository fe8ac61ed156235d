package ports

import (
	"context"

	"qrave/internal/core/domain/model/order"
)

// EventPublisher hands committed order events to the bus.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}

// EventListener receives events published by any process sharing the bus.
// Listen blocks, calling handle for each event, until ctx is done or the
// connection fails for good.
type EventListener interface {
	Listen(ctx context.Context, handle func(order.Event)) error
}

// EventBus is one backend providing both sides.
type EventBus interface {
	EventPublisher
	EventListener
	Close() error
}
