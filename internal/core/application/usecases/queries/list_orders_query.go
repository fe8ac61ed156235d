package queries

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery fetches every order of one restaurant for the kitchen
// board.
type ListOrdersQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(restaurantID kernel.UUID) (ListOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	return ListOrdersQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }
