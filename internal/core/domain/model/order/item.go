package order

import (
	"errors"
	"fmt"
	"strings"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. Name and unit price are copied from the menu when
// the order is placed and never follow later menu edits.
type Item struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	guard      guard.ConstructorGuard
}

// NewItem validates a line for a new order: a real menu item reference,
// a name, quantity >= 1 and a positive unit price.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := errors.Join(
		menuItemID.Validate(),
		validateItemFields(name, quantity, unitPrice),
	); err != nil {
		return Item{}, err
	}
	return Item{
		menuItemID: menuItemID,
		name:       strings.TrimSpace(name),
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rebuilds a stored line. menuItemID may be the zero UUID when the
// referenced menu item has since been deleted.
func RestoreItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := validateItemFields(name, quantity, unitPrice); err != nil {
		return Item{}, err
	}
	return Item{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func validateItemFields(name string, quantity int, unitPrice kernel.Money) error {
	var result []error
	if strings.TrimSpace(name) == "" {
		result = append(result, errs.NewValueIsRequiredError("item name"))
	}
	if quantity < 1 {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if !unitPrice.IsPositive() {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is not greater than 0", unitPrice.Minor())))
	}
	return errors.Join(result...)
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID is zero once the menu item was deleted.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}
