package commands

import (
	"context"

	"qrave/internal/core/domain/model/restaurant"

	"golang.org/x/crypto/bcrypt"
)

// CreateRestaurantCommandHandler hashes the password and stores the new
// restaurant. A taken slug surfaces as *errs.ObjectAlreadyExistsError.
type CreateRestaurantCommandHandler struct {
	uowFactory   RestaurantUoWFactory
	passwordCost int
}

// NewCreateRestaurantCommandHandler uses bcrypt.DefaultCost when
// passwordCost is zero.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory, passwordCost int) CreateRestaurantCommandHandler {
	if passwordCost == 0 {
		passwordCost = bcrypt.DefaultCost
	}
	return CreateRestaurantCommandHandler{uowFactory: uowFactory, passwordCost: passwordCost}
}

func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	credential, err := restaurant.NewCredentialWithCost(cmd.Password(), h.passwordCost)
	if err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Slug(), cmd.Name(), cmd.Address(), credential)
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

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRestaurantCommand,
) (*restaurant.Restaurant, error) {
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

	repo := uow.RestaurantRepository()
	r, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = r.Update(cmd.Name(), cmd.Address()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// DeleteRestaurantCommandHandler relies on the store to cascade the delete
// to menu items and orders.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	if err := uow.RestaurantRepository().Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
