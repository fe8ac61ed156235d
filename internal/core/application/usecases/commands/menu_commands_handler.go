package commands

import (
	"context"

	"qrave/internal/core/domain/model/menu"
)

type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns *errs.ObjectNotFoundError when the restaurant is unknown.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(cmd.MenuItemID(), cmd.RestaurantID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.Item, error) {
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

	repo := uow.MenuRepository()
	item, err := repo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if err = item.Update(cmd.Details()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
