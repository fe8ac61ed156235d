// Package queries contains read-only operations. Handlers query the database
// directly through GORM and return flat views instead of aggregates; no
// query takes row locks or writes.
package queries

import (
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

// OrderItemView is one line of an order as it was placed. MenuItemID is nil
// once the menu item has been deleted.
type OrderItemView struct {
	MenuItemID *kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
}

// OrderView is the full order record handed to viewers.
type OrderView struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	TableNumber  int
	Items        []OrderItemView
	Total        kernel.Money
	Status       order.Status
	Version      int
	CustomerNote string
	CreatedAt    time.Time
}

// Key returns the fields the kitchen board sorts by.
func (v OrderView) Key() order.DisplayKey {
	return order.DisplayKey{ID: v.ID.String(), Status: v.Status, CreatedAt: v.CreatedAt}
}

// RestaurantView never carries the password hash.
type RestaurantView struct {
	ID        kernel.UUID
	Slug      string
	Name      string
	Address   string
	CreatedAt time.Time
}

// RestaurantSummary is a restaurant with the counts shown to the
// super-admin.
type RestaurantSummary struct {
	RestaurantView
	MenuItemCount int
	OrderCount    int
}

type MenuItemView struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Description  string
	Price        kernel.Money
	Category     string
	ImageURL     string
	IsVegetarian bool
	IsSpicy      bool
	Available    bool
}

// RestaurantMenuView is what a diner loads after scanning a table code.
type RestaurantMenuView struct {
	RestaurantView
	Menu []MenuItemView
}
