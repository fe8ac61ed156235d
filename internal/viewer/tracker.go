package viewer

import (
	"context"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
)

// Tracker follows one order for a diner until it is completed or
// cancelled. Reaching a terminal status ends the observation: the
// subscription is closed and nothing is fetched afterwards.
type Tracker struct {
	watcher Watcher
	orderID kernel.UUID
}

func NewTracker(watcher Watcher, orderID kernel.UUID) *Tracker {
	return &Tracker{watcher: watcher, orderID: orderID}
}

// Run blocks until the order is terminal, gone, or ctx ends. onChange sees
// every state that differs from the previous one, the final state included.
// A deleted order ends Run with an errs.ObjectNotFoundError.
func (t *Tracker) Run(ctx context.Context, onChange func(queries.OrderView)) (queries.OrderView, error) {
	sub, err := t.watcher.Watch(ctx, OrderInterest(t.orderID))
	if err != nil {
		return queries.OrderView{}, err
	}
	defer sub.Close()

	var (
		current queries.OrderView
		known   bool
	)
	for {
		u, nextErr := sub.Next(ctx)
		if nextErr != nil {
			return current, nextErr
		}

		next, changed, gone := t.fold(current, known, u)
		if gone {
			return current, errs.NewObjectNotFoundError("order", t.orderID)
		}
		if !changed {
			continue
		}
		current, known = next, true
		if onChange != nil {
			onChange(current)
		}
		if current.Status.IsTerminal() {
			return current, nil
		}
	}
}

func (t *Tracker) fold(current queries.OrderView, known bool, u Update) (next queries.OrderView, changed, gone bool) {
	switch u.Kind {
	case UpdateSnapshot, UpdatePlaced:
		for _, o := range u.Orders {
			if !o.ID.IsEqual(t.orderID) {
				continue
			}
			if !known {
				return o, true, false
			}
			next, changed = advance(current, o.Status, o.Version)
			return next, changed, false
		}
		// A snapshot without the order means it was deleted.
		return current, false, u.Kind == UpdateSnapshot
	case UpdateStatus:
		if !known || !u.Event.OrderID.IsEqual(t.orderID) {
			return current, false, false
		}
		next, changed = advance(current, u.Event.Status, u.Event.Version)
		return next, changed, false
	case UpdateRemoved:
		return current, false, u.Event.OrderID.IsEqual(t.orderID)
	}
	return current, false, false
}

// advance applies a status change from a newer version. Terminal orders
// never change.
func advance(current queries.OrderView, status order.Status, version int) (queries.OrderView, bool) {
	if current.Status.IsTerminal() || version <= current.Version {
		return current, false
	}
	current.Status = status
	current.Version = version
	return current, true
}
