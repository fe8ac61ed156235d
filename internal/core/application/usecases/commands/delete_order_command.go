package commands

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
	ErrDeleteCompletedOrdersCommandIsNotConstructed = errors.New(
		"DeleteCompletedOrdersCommand must be created via NewDeleteCompletedOrdersCommand constructor",
	)
)

// DeleteOrderCommand removes one order regardless of its status.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return DeleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }

// DeleteCompletedOrdersCommand clears the COMPLETED and CANCELLED orders of
// one restaurant.
type DeleteCompletedOrdersCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCompletedOrdersCommand(restaurantID kernel.UUID) (DeleteCompletedOrdersCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return DeleteCompletedOrdersCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return DeleteCompletedOrdersCommand{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCompletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompletedOrdersCommandIsNotConstructed)
}

func (c DeleteCompletedOrdersCommand) RestaurantID() kernel.UUID { return c.restaurantID }
