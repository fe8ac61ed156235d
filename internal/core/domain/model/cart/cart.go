// Package cart holds the basket of one ordering session.
//
// A Cart is an ordinary value owned by whoever runs the session (a console
// screen, a test). Nothing in the process shares it, so two diners at two
// tables never see each other's selections.
package cart

import (
	"slices"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
)

// Line is one selected dish with the price shown to the diner.
type Line struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
}

// Cart collects lines in the order they were first added.
// The zero value is an empty cart ready for use. A Cart is not safe for
// concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one more unit of the item into the cart.
func (c *Cart) Add(menuItemID kernel.UUID, name string, unitPrice kernel.Money) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidError("unit price")
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID.IsEqual(menuItemID) {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{MenuItemID: menuItemID, Name: name, UnitPrice: unitPrice, Quantity: 1})
	return nil
}

// Remove takes one unit away and drops the line when it reaches zero.
// Removing an item that is not in the cart is a no-op.
func (c *Cart) Remove(menuItemID kernel.UUID) {
	for i := range c.lines {
		if !c.lines[i].MenuItemID.IsEqual(menuItemID) {
			continue
		}
		c.lines[i].Quantity--
		if c.lines[i].Quantity == 0 {
			c.lines = slices.Delete(c.lines, i, i+1)
		}
		return
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the cart content.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Total is the sum of unit price times quantity over all lines.
func (c *Cart) Total() (kernel.Money, error) {
	var total kernel.Money
	for _, l := range c.lines {
		sub, err := l.UnitPrice.Multiply(l.Quantity)
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(sub); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
