package commands

import (
	"context"

	"qrave/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler is the only writer of order status.
//
// The order row is read FOR UPDATE, so concurrent requests for the same
// order are serialized and the second one sees the first one's result. The
// write is additionally guarded by the version read, which turns any write
// that slipped past the lock into *errs.VersionIsInvalidError instead of a
// lost update. The status change and its StatusChanged event commit
// together; the unit of work's commit hook then nudges the outbox relay.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.InvalidTransitionError when the lifecycle forbids the move
//   - *errs.VersionIsInvalidError when the compare-and-swap lost
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order as committed.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := o.Version()
	if err = o.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
