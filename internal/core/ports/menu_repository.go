package ports

import (
	"context"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
)

type MenuRepository interface {
	Add(ctx context.Context, item *menu.Item) error
	Update(ctx context.Context, item *menu.Item) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)
	// Delete removes the item; order lines that referenced it keep their snapshot.
	Delete(ctx context.Context, id kernel.UUID) error
	// FindByIDs returns the items of the restaurant among ids. Unknown ids are
	// skipped rather than reported.
	FindByIDs(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]*menu.Item, error)
}
