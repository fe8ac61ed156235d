package commands

import (
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move one order to a target status.
// Whether the move is legal is decided by the handler against the stored
// status, not here.
//
// Example:
//
//	target, err := order.ParseStatus("PREPARING")
//	cmd, err := NewChangeOrderStatusCommand(orderID, target)
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Target() order.Status { return c.target }

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.target = s
	return nil
}
