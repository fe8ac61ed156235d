// Package viewer keeps client-side views of orders in step with the server.
//
// A Watcher turns an Interest (one order or one restaurant) into a stream of
// Updates. PollWatcher re-fetches snapshots on an interval, PushWatcher
// follows the server's event stream. Board and Tracker fold those updates
// into a kitchen list and a single-order view.
package viewer

import (
	"context"
	"errors"

	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"
)

var ErrClosed = errors.New("subscription is closed")

// Interest names what a subscription follows: exactly one of OrderID and
// RestaurantID is set.
type Interest struct {
	OrderID      *kernel.UUID
	RestaurantID *kernel.UUID
}

func OrderInterest(id kernel.UUID) Interest {
	return Interest{OrderID: &id}
}

func RestaurantInterest(id kernel.UUID) Interest {
	return Interest{RestaurantID: &id}
}

func (i Interest) Validate() error {
	if (i.OrderID == nil) == (i.RestaurantID == nil) {
		return errs.NewValueIsInvalidErrorWithCause("interest",
			errors.New("exactly one of order id and restaurant id is required"))
	}
	return nil
}

type UpdateKind int

const (
	// UpdateSnapshot carries every order the interest currently covers.
	UpdateSnapshot UpdateKind = iota + 1
	// UpdatePlaced carries the full record of one order the viewer may not
	// know yet.
	UpdatePlaced
	// UpdateStatus carries a status change in Event.
	UpdateStatus
	// UpdateRemoved carries the deletion of Event.OrderID.
	UpdateRemoved
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateSnapshot:
		return "snapshot"
	case UpdatePlaced:
		return "placed"
	case UpdateStatus:
		return "status"
	case UpdateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type Update struct {
	Kind   UpdateKind
	Orders []queries.OrderView
	Event  order.Event
}

func snapshotUpdate(orders []queries.OrderView) Update {
	return Update{Kind: UpdateSnapshot, Orders: orders}
}

func placedUpdate(o queries.OrderView) Update {
	return Update{Kind: UpdatePlaced, Orders: []queries.OrderView{o}}
}

// orderID is the order a non-snapshot update is about.
func (u Update) orderID() kernel.UUID {
	if u.Kind == UpdatePlaced {
		return u.Orders[0].ID
	}
	return u.Event.OrderID
}

func (u Update) version() int {
	if u.Kind == UpdatePlaced {
		return u.Orders[0].Version
	}
	return u.Event.Version
}

// Watcher opens subscriptions. Implementations differ only in how updates
// reach the client.
type Watcher interface {
	Watch(ctx context.Context, interest Interest) (Subscription, error)
}

// Subscription delivers updates until it is closed or its context ends.
// A slow reader may see intermediate states coalesced, never a stale one
// after a newer one for the same order.
type Subscription interface {
	Next(ctx context.Context) (Update, error)
	Close()
}

// Source loads full order records. A missing order is reported with an
// errs.ObjectNotFoundError.
type Source interface {
	GetOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error)
	ListOrders(ctx context.Context, restaurantID kernel.UUID) ([]queries.OrderView, error)
}

// snapshot fetches the current records for interest. A vanished order
// yields an empty snapshot.
func snapshot(ctx context.Context, source Source, interest Interest) ([]queries.OrderView, error) {
	if interest.RestaurantID != nil {
		return source.ListOrders(ctx, *interest.RestaurantID)
	}
	o, err := source.GetOrder(ctx, *interest.OrderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return []queries.OrderView{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []queries.OrderView{o}, nil
}
