package client

import (
	"strings"

	"qrave/internal/core/domain/model/cart"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/generated/servers"
	"qrave/internal/pkg/errs"
)

// NewOrder turns a cart into a create-order request. Prices and the total
// are sent as the diner saw them; the server rejects the order when the
// menu has changed since.
func NewOrder(restaurantID kernel.UUID, tableNumber int, c *cart.Cart, note string) (servers.NewOrder, error) {
	if c.IsEmpty() {
		return servers.NewOrder{}, errs.NewValueIsRequiredError("items")
	}
	total, err := c.Total()
	if err != nil {
		return servers.NewOrder{}, err
	}

	lines := c.Lines()
	items := make([]servers.NewOrderLine, len(lines))
	for i, l := range lines {
		price := l.UnitPrice.Minor()
		items[i] = servers.NewOrderLine{Id: l.MenuItemID.Bytes(), Quantity: l.Quantity, Price: &price}
	}

	body := servers.NewOrder{
		RestaurantId: restaurantID.Bytes(),
		TableNumber:  tableNumber,
		Items:        items,
	}
	minor := total.Minor()
	body.Total = &minor
	if note = strings.TrimSpace(note); note != "" {
		body.Note = &note
	}
	return body, nil
}

// FindMenuItem looks an item up by name, ignoring case.
func FindMenuItem(menu []servers.MenuItem, name string) (servers.MenuItem, error) {
	for _, m := range menu {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return servers.MenuItem{}, errs.NewObjectNotFoundError("menu item", name)
}

// AddToCart puts quantity units of a menu item into c.
func AddToCart(c *cart.Cart, item servers.MenuItem, quantity int) error {
	if !item.Available {
		return errs.NewValueIsInvalidError("menu item " + item.Name + " is unavailable")
	}
	id, err := kernel.UUIDFrom(item.Id)
	if err != nil {
		return err
	}
	price, err := kernel.NewMoney(item.Price)
	if err != nil {
		return err
	}
	for range quantity {
		if err := c.Add(id, item.Name, price); err != nil {
			return err
		}
	}
	return nil
}
