// Package outboxrepo stores order events in the order_events table until the
// relay has handed them to the event bus.
package outboxrepo

import (
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/ports"

	"github.com/google/uuid"
)

// OrderEventDTO is a row of the outbox. It has no foreign key to orders
// because deletion events outlive the order.
type OrderEventDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Kind         string     `gorm:"type:varchar(32);not null"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null"`
	Status       string     `gorm:"type:varchar(16);not null"`
	Version      int        `gorm:"not null"`
	OccurredAt   time.Time  `gorm:"not null"`
	PublishedAt  *time.Time `gorm:"index"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(e order.Event) OrderEventDTO {
	return OrderEventDTO{
		Kind:         string(e.Kind),
		OrderID:      e.OrderID.Bytes(),
		RestaurantID: e.RestaurantID.Bytes(),
		Status:       e.Status.String(),
		Version:      e.Version,
		OccurredAt:   e.OccurredAt,
	}
}

func toDomain(dto OrderEventDTO) (ports.OutboxMessage, error) {
	orderID, err := kernel.UUIDFrom(dto.OrderID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	restaurantID, err := kernel.UUIDFrom(dto.RestaurantID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID: dto.ID,
		Event: order.Event{
			Kind:         order.EventKind(dto.Kind),
			OrderID:      orderID,
			RestaurantID: restaurantID,
			Status:       status,
			Version:      dto.Version,
			OccurredAt:   dto.OccurredAt.UTC(),
		},
	}, nil
}
