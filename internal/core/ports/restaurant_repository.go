package ports

import (
	"context"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
)

type RestaurantRepository interface {
	// Add stores a new restaurant. A taken slug yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	GetBySlug(ctx context.Context, slug restaurant.Slug) (*restaurant.Restaurant, error)
	// Delete removes the restaurant and, through the schema, its menu and orders.
	Delete(ctx context.Context, id kernel.UUID) error
}
