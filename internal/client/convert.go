package client

import (
	"errors"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/generated/servers"
)

// OrderView converts an API order into the record viewers work with.
func OrderView(o servers.Order) (queries.OrderView, error) {
	id, idErr := kernel.UUIDFrom(o.Id)
	restaurantID, restaurantErr := kernel.UUIDFrom(o.RestaurantId)
	status, statusErr := order.ParseStatus(string(o.Status))
	total, totalErr := kernel.NewMoney(o.Total)
	if err := errors.Join(idErr, restaurantErr, statusErr, totalErr); err != nil {
		return queries.OrderView{}, err
	}

	items := make([]queries.OrderItemView, len(o.Items))
	for i, it := range o.Items {
		item, err := orderItemView(it)
		if err != nil {
			return queries.OrderView{}, err
		}
		items[i] = item
	}

	return queries.OrderView{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  o.TableNumber,
		Items:        items,
		Total:        total,
		Status:       status,
		Version:      o.Version,
		CustomerNote: o.CustomerNote,
		CreatedAt:    o.CreatedAt,
	}, nil
}

func orderItemView(it servers.OrderItem) (queries.OrderItemView, error) {
	unit, unitErr := kernel.NewMoney(it.Price)
	subtotal, subtotalErr := kernel.NewMoney(it.Subtotal)
	if err := errors.Join(unitErr, subtotalErr); err != nil {
		return queries.OrderItemView{}, err
	}
	view := queries.OrderItemView{Name: it.Name, Quantity: it.Quantity, UnitPrice: unit, Subtotal: subtotal}
	if it.MenuItemId != nil {
		id, err := kernel.UUIDFrom(*it.MenuItemId)
		if err != nil {
			return queries.OrderItemView{}, err
		}
		view.MenuItemID = &id
	}
	return view, nil
}

// Event converts an API order event.
func Event(e servers.OrderEvent) (order.Event, error) {
	id, idErr := kernel.UUIDFrom(e.OrderId)
	restaurantID, restaurantErr := kernel.UUIDFrom(e.RestaurantId)
	status, statusErr := order.ParseStatus(string(e.Status))
	if err := errors.Join(idErr, restaurantErr, statusErr); err != nil {
		return order.Event{}, err
	}
	return order.Event{
		Kind:         order.EventKind(e.Kind),
		OrderID:      id,
		RestaurantID: restaurantID,
		Status:       status,
		Version:      e.Version,
		OccurredAt:   e.OccurredAt,
	}, nil
}
