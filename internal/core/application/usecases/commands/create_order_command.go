package commands

import (
	"errors"
	"fmt"
	"slices"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/services"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a diner placing an order for a table.
// Lines reference menu items by id; names and prices are taken from the menu
// when the handler runs. The prices and total the diner saw are optional and,
// when present, must match the menu.
//
// Example:
//
//	price := kernel.MustMoney(1000)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), restaurantID, 7,
//	    []services.RequestedLine{{MenuItemID: pizzaID, Quantity: 2, Price: &price}},
//	    nil, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	tableNumber  int
	lines        []services.RequestedLine
	claimedTotal *kernel.Money
	note         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Menu rules (existence,
// availability, prices) are checked by the handler against stored items.
func NewCreateOrderCommand(
	orderID, restaurantID kernel.UUID,
	tableNumber int,
	lines []services.RequestedLine,
	claimedTotal *kernel.Money,
	note string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		claimedTotal: claimedTotal,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTableNumber(tableNumber),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateOrderCommand) TableNumber() int          { return c.tableNumber }
func (c CreateOrderCommand) Note() string              { return c.note }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	return slices.Clone(c.lines)
}

// MenuItemIDs returns the distinct menu item ids in request order.
func (c CreateOrderCommand) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if !slices.ContainsFunc(ids, l.MenuItemID.IsEqual) {
			ids = append(ids, l.MenuItemID)
		}
	}
	return ids
}

func (c CreateOrderCommand) request() services.OrderRequest {
	return services.OrderRequest{
		OrderID:      c.orderID,
		RestaurantID: c.restaurantID,
		TableNumber:  c.tableNumber,
		Lines:        c.Lines(),
		ClaimedTotal: c.claimedTotal,
		Note:         c.note,
	}
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setTableNumber(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", n))
	}
	c.tableNumber = n
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("item %d id", i), err)
		}
		if l.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("item %d quantity", i), fmt.Errorf("%d is not greater than 0", l.Quantity))
		}
	}
	c.lines = slices.Clone(lines)
	return nil
}
