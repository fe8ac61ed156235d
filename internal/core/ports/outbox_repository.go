package ports

import (
	"context"
	"time"

	"qrave/internal/core/domain/model/order"
)

// OutboxMessage is an order event waiting in the outbox.
type OutboxMessage struct {
	ID    int64
	Event order.Event
}

// OutboxRepository reads and acknowledges outbox rows. Rows are written by
// the unit of work itself on commit.
type OutboxRepository interface {
	// Pending locks up to limit unpublished rows, oldest first, skipping rows
	// already locked by another relay.
	Pending(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64) error
	// PurgePublished drops published rows older than before.
	PurgePublished(ctx context.Context, before time.Time) (int, error)
}
