package queries

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its items, e.g. for a diner tracking
// their order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	view, err := handler.Handle(ctx, query)
//	fmt.Printf("table %d: %s\n", view.TableNumber, view.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
