package commands

import (
	"context"

	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. It loads the referenced menu
// items inside the transaction, lets the OrderComposer snapshot names and
// prices, and stores the order together with its Placed event.
type CreateOrderCommandHandler struct {
	uowFactory MenuOrderUoWFactory
	composer   services.OrderComposer
}

func NewCreateOrderCommandHandler(uowFactory MenuOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewOrderComposer(),
	}
}

// Handle returns the stored order in PENDING status at version 1.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItems, err := uow.MenuRepository().FindByIDs(ctx, cmd.RestaurantID(), cmd.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	o, err := h.composer.Compose(cmd.request(), menuItems)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
