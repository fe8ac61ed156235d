// Package eventbus carries order events between server instances and fans
// them out to in-process subscribers.
//
// A Bus moves events from the outbox relay of any instance to the listeners
// of every instance. Four backends exist: in-memory for a single process,
// PostgreSQL NOTIFY, Redis pub/sub and a RabbitMQ fanout exchange. The Hub
// sits on the receiving side and hands events to subscriptions keyed by
// order or restaurant, coalescing bursts per order.
//
// Delivery is at-least-once and unordered across orders. Every event carries
// the order version, which is what subscribers use to discard stale or
// duplicate observations.
package eventbus

import (
	"encoding/json"
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

type wireEvent struct {
	Kind         string    `json:"kind"`
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	Status       string    `json:"status"`
	Version      int       `json:"version"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// Encode serializes e for transport.
func Encode(e order.Event) ([]byte, error) {
	return json.Marshal(wireEvent{
		Kind:         string(e.Kind),
		OrderID:      e.OrderID.String(),
		RestaurantID: e.RestaurantID.String(),
		Status:       e.Status.String(),
		Version:      e.Version,
		OccurredAt:   e.OccurredAt,
	})
}

// Decode parses a payload produced by Encode.
func Decode(payload []byte) (order.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(payload, &w); err != nil {
		return order.Event{}, err
	}
	orderID, err := kernel.UUIDFromString(w.OrderID)
	if err != nil {
		return order.Event{}, err
	}
	restaurantID, err := kernel.UUIDFromString(w.RestaurantID)
	if err != nil {
		return order.Event{}, err
	}
	status, err := order.ParseStatus(w.Status)
	if err != nil {
		return order.Event{}, err
	}
	return order.Event{
		Kind:         order.EventKind(w.Kind),
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       status,
		Version:      w.Version,
		OccurredAt:   w.OccurredAt,
	}, nil
}
