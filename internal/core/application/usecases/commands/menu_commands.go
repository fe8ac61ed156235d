package commands

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand adds a dish to a restaurant's menu. Details are
// validated by the menu aggregate when the handler builds it.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	details      menu.Details

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(menuItemID, restaurantID kernel.UUID, details menu.Details) (CreateMenuItemCommand, error) {
	var idErr, restaurantErr error
	if err := menuItemID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	if err := restaurantID.Validate(); err != nil {
		restaurantErr = errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	if err := errors.Join(idErr, restaurantErr); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		menuItemID:   menuItemID,
		restaurantID: restaurantID,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID   { return c.menuItemID }
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateMenuItemCommand) Details() menu.Details     { return c.details }

// UpdateMenuItemCommand replaces every editable attribute of a menu item.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	details    menu.Details

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(menuItemID kernel.UUID, details menu.Details) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	return UpdateMenuItemCommand{menuItemID: menuItemID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c UpdateMenuItemCommand) Details() menu.Details   { return c.details }

// DeleteMenuItemCommand removes a menu item. Orders that contain it keep
// their name and price snapshot.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	return DeleteMenuItemCommand{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
