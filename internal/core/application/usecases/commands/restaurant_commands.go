package commands

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
		"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
	)
	ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
		"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
	)
)

// CreateRestaurantCommand registers a tenant. The password is kept only
// until the handler hashes it.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	slug         restaurant.Slug
	name         string
	address      string
	password     string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	slug, name, address, password string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		name:     name,
		address:  address,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	s, slugErr := restaurant.NewSlug(slug)
	cmd.slug = s

	var idErr error
	if err := restaurantID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	cmd.restaurantID = restaurantID

	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(idErr, slugErr, passwordErr); err != nil {
		return CreateRestaurantCommand{}, err
	}
	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateRestaurantCommand) Slug() restaurant.Slug     { return c.slug }
func (c CreateRestaurantCommand) Name() string              { return c.name }
func (c CreateRestaurantCommand) Address() string           { return c.address }
func (c CreateRestaurantCommand) Password() string          { return c.password }

// UpdateRestaurantCommand replaces a restaurant's name and address.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string

	guard guard.ConstructorGuard
}

func NewUpdateRestaurantCommand(restaurantID kernel.UUID, name, address string) (UpdateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return UpdateRestaurantCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		name:         name,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c UpdateRestaurantCommand) Name() string              { return c.name }
func (c UpdateRestaurantCommand) Address() string           { return c.address }

// DeleteRestaurantCommand removes a restaurant together with its menu and
// orders.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRestaurantCommand(restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return DeleteRestaurantCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return DeleteRestaurantCommand{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
