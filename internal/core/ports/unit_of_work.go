package ports

import (
	"context"
)

// UnitOfWorkFactory creates one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction. On Commit it also writes the domain
// events of every aggregate the repositories touched into the outbox, in the
// same database transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	RestaurantRepository() RestaurantRepository
	MenuRepository() MenuRepository
	OutboxRepository() OutboxRepository
}
