package services

import (
	"errors"
	"fmt"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
)

var (
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrPriceMismatch       = errors.New("price differs from the menu")
	ErrTotalMismatch       = errors.New("total differs from the sum of the items")
)

// RequestedLine is one line as sent by the diner. Price is the unit price the
// diner was shown; nil skips the check.
type RequestedLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      *kernel.Money
}

// OrderRequest is everything the diner submits when placing an order.
type OrderRequest struct {
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
	TableNumber  int
	Lines        []RequestedLine
	ClaimedTotal *kernel.Money
	Note         string
}

// OrderComposer builds orders from menu snapshots.
//
// Business rules:
//   - every requested item must exist on the restaurant's menu
//     (*errs.ObjectNotFoundError otherwise)
//   - every requested item must be available
//   - a client price must equal the current menu price
//   - a client total must equal the computed total
//   - repeated lines for the same item are merged, keeping the first position
//
// The resulting order holds the menu name and price at this moment, so later
// menu edits never change it.
type OrderComposer struct{}

func NewOrderComposer() OrderComposer {
	return OrderComposer{}
}

// Compose validates req against menuItems and returns a new PENDING order.
func (OrderComposer) Compose(req OrderRequest, menuItems []*menu.Item) (*order.Order, error) {
	if len(req.Lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*menu.Item, len(menuItems))
	for _, it := range menuItems {
		if it.Validate() == nil && it.RestaurantID().IsEqual(req.RestaurantID) {
			byID[it.ID()] = it
		}
	}

	quantities := map[kernel.UUID]int{}
	var sequence []kernel.UUID
	for _, line := range req.Lines {
		it, ok := byID[line.MenuItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", line.MenuItemID)
		}
		if !it.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("menu item %s", it.Name()), ErrMenuItemUnavailable)
		}
		if line.Price != nil && !line.Price.IsEqual(it.Price()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("price of %s", it.Name()),
				fmt.Errorf("%w: got %s, menu says %s", ErrPriceMismatch, line.Price, it.Price()))
		}
		if _, seen := quantities[it.ID()]; !seen {
			sequence = append(sequence, it.ID())
		}
		quantities[it.ID()] += line.Quantity
	}

	items := make([]order.Item, 0, len(sequence))
	for _, id := range sequence {
		it := byID[id]
		line, err := order.NewItem(id, it.Name(), quantities[id], it.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}

	o, err := order.NewOrder(req.OrderID, req.RestaurantID, req.TableNumber, items, req.Note)
	if err != nil {
		return nil, err
	}

	if req.ClaimedTotal != nil && !req.ClaimedTotal.IsEqual(o.Total()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%w: got %s, computed %s", ErrTotalMismatch, req.ClaimedTotal, o.Total()))
	}
	return o, nil
}
