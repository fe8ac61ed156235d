package pgtest

import (
	"context"
	"fmt"

	"qrave/internal/adapters/out/postgres/menurepo"
	"qrave/internal/adapters/out/postgres/restaurantrepo"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/restaurant"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedRestaurant inserts a restaurant whose password is "password".
func SeedRestaurant(ctx context.Context, db *gorm.DB, slug string) (*restaurant.Restaurant, error) {
	s, err := restaurant.NewSlug(slug)
	if err != nil {
		return nil, err
	}
	cred, err := restaurant.NewCredentialWithCost("password", bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), s, fmt.Sprintf("Restaurant %s", slug), "", cred)
	if err != nil {
		return nil, err
	}
	if err = restaurantrepo.NewGormRestaurantRepository(db, nopTracker{}).Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SeedMenuItem inserts an available menu item.
func SeedMenuItem(ctx context.Context, db *gorm.DB, restaurantID kernel.UUID, name string, price int64) (*menu.Item, error) {
	it, err := menu.NewItem(kernel.NewUUID(), restaurantID, menu.Details{
		Name:      name,
		Price:     kernel.MustMoney(price),
		Category:  "Mains",
		Available: true,
	})
	if err != nil {
		return nil, err
	}
	if err = menurepo.NewGormMenuRepository(db, nopTracker{}).Add(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}
