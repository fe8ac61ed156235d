package http

import (
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func orderFromAggregate(o *order.Order) servers.Order {
	items := o.Items()
	out := make([]servers.OrderItem, len(items))
	for i, it := range items {
		id := it.MenuItemID().Bytes()
		subtotal, _ := it.Subtotal()
		out[i] = servers.OrderItem{
			MenuItemId: &id,
			Name:       it.Name(),
			Quantity:   it.Quantity(),
			Price:      it.UnitPrice().Minor(),
			Subtotal:   subtotal.Minor(),
		}
	}
	return servers.Order{
		Id:           o.ID().Bytes(),
		RestaurantId: o.RestaurantID().Bytes(),
		TableNumber:  o.TableNumber(),
		Items:        out,
		Total:        o.Total().Minor(),
		Status:       servers.OrderStatus(o.Status().String()),
		Version:      o.Version(),
		CustomerNote: o.CustomerNote(),
		CreatedAt:    o.CreatedAt(),
	}
}

func orderFromView(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, it := range v.Items {
		var menuItemID *openapi_types.UUID
		if it.MenuItemID != nil {
			id := it.MenuItemID.Bytes()
			menuItemID = &id
		}
		items[i] = servers.OrderItem{
			MenuItemId: menuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.UnitPrice.Minor(),
			Subtotal:   it.Subtotal.Minor(),
		}
	}
	return servers.Order{
		Id:           v.ID.Bytes(),
		RestaurantId: v.RestaurantID.Bytes(),
		TableNumber:  v.TableNumber,
		Items:        items,
		Total:        v.Total.Minor(),
		Status:       servers.OrderStatus(v.Status.String()),
		Version:      v.Version,
		CustomerNote: v.CustomerNote,
		CreatedAt:    v.CreatedAt,
	}
}

func orderEvent(e order.Event) servers.OrderEvent {
	return servers.OrderEvent{
		Kind:         servers.OrderEventKind(e.Kind),
		OrderId:      e.OrderID.Bytes(),
		RestaurantId: e.RestaurantID.Bytes(),
		Status:       servers.OrderStatus(e.Status.String()),
		Version:      e.Version,
		OccurredAt:   e.OccurredAt,
	}
}

func restaurantFromAggregate(r *restaurant.Restaurant) servers.Restaurant {
	return servers.Restaurant{
		Id:      r.ID().Bytes(),
		Slug:    r.Slug().String(),
		Name:    r.Name(),
		Address: r.Address(),
	}
}

func restaurantFromView(v queries.RestaurantView) servers.Restaurant {
	createdAt := v.CreatedAt
	return servers.Restaurant{
		Id:        v.ID.Bytes(),
		Slug:      v.Slug,
		Name:      v.Name,
		Address:   v.Address,
		CreatedAt: &createdAt,
	}
}

func menuItemFromAggregate(it *menu.Item) servers.MenuItem {
	d := it.Details()
	return servers.MenuItem{
		Id:           it.ID().Bytes(),
		RestaurantId: it.RestaurantID().Bytes(),
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price.Minor(),
		Category:     d.Category,
		ImageUrl:     d.ImageURL,
		IsVegetarian: d.IsVegetarian,
		IsSpicy:      d.IsSpicy,
		Available:    d.Available,
	}
}

func menuItemFromView(v queries.MenuItemView) servers.MenuItem {
	return servers.MenuItem{
		Id:           v.ID.Bytes(),
		RestaurantId: v.RestaurantID.Bytes(),
		Name:         v.Name,
		Description:  v.Description,
		Price:        v.Price.Minor(),
		Category:     v.Category,
		ImageUrl:     v.ImageURL,
		IsVegetarian: v.IsVegetarian,
		IsSpicy:      v.IsSpicy,
		Available:    v.Available,
	}
}

// menuDetails applies the API defaults: optional text is empty, flags are
// false and a dish is available unless stated otherwise.
func menuDetails(u servers.MenuItemUpdate) (menu.Details, error) {
	price, err := kernel.NewMoney(u.Price)
	if err != nil {
		return menu.Details{}, err
	}
	return menu.Details{
		Name:         u.Name,
		Description:  deref(u.Description, ""),
		Price:        price,
		Category:     u.Category,
		ImageURL:     deref(u.ImageUrl, ""),
		IsVegetarian: deref(u.IsVegetarian, false),
		IsSpicy:      deref(u.IsSpicy, false),
		Available:    deref(u.Available, true),
	}, nil
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
