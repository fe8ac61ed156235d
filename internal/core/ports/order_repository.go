// Package ports declares the contracts between the ordering core and its
// adapters: repositories bound to a unit of work, the transactional outbox
// and the event bus that carries committed order events between processes.
package ports

import (
	"context"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add stores a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items.
	// Returns *errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get that also locks the row until the transaction ends,
	// so concurrent transitions of the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update writes status and version only if the stored version still
	// equals expectedVersion. A lost race yields *errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error

	// Delete removes one order in any status.
	// Returns *errs.ObjectNotFoundError when the id is unknown.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteTerminal removes every COMPLETED or CANCELLED order of the
	// restaurant and returns how many were removed.
	DeleteTerminal(ctx context.Context, restaurantID kernel.UUID) (int, error)
}
