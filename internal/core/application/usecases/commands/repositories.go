// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a value built by its constructor,
// a handler that validates it, opens a unit of work, drives the aggregates
// and commits. Commands that change orders leave their events in the outbox
// through the same commit.
package commands

import (
	"context"

	"qrave/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what each handler uses.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuOrderUoW reads menu items and writes orders in one transaction.
	// Used when placing an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.MenuRepository().FindByIDs(ctx, restaurantID, ids)
	//   // ... compose the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	MenuOrderUoW interface {
		TxManager
		MenuRepoFactory
		OrderRepoFactory
	}

	MenuOrderUoWFactory interface {
		Create() MenuOrderUoW
	}

	// RestaurantUoW manages transactions for restaurant administration.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// MenuUoW manages transactions for menu maintenance.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OutboxUoW manages transactions for the outbox relay and cleanup.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
