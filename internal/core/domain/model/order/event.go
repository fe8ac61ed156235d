package order

import (
	"time"

	"qrave/internal/core/domain/model/kernel"
)

// EventKind names what happened to an order.
type EventKind string

const (
	EventPlaced        EventKind = "order.placed"
	EventStatusChanged EventKind = "order.status_changed"
	EventDeleted       EventKind = "order.deleted"
)

// Event is an observable change of one order. Version is the order version
// after the change; for EventDeleted it is the last known version.
type Event struct {
	Kind         EventKind
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
	Status       Status
	Version      int
	OccurredAt   time.Time
}

// NewDeletedEvent records the removal of an order that is no longer loaded
// as an aggregate, e.g. after a bulk delete.
func NewDeletedEvent(orderID, restaurantID kernel.UUID, status Status, version int) Event {
	return Event{
		Kind:         EventDeleted,
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       status,
		Version:      version,
		OccurredAt:   time.Now().UTC(),
	}
}
