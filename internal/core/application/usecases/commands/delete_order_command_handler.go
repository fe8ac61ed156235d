package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes a single order and records its Deleted
// event in the same transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteCompletedOrdersCommandHandler bulk-deletes terminal orders. Running
// it twice is harmless: the second run deletes nothing and returns 0.
type DeleteCompletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteCompletedOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteCompletedOrdersCommandHandler {
	return DeleteCompletedOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many orders were removed.
func (h *DeleteCompletedOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteCompletedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.OrderRepository().DeleteTerminal(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
