// Package postgres implements the unit of work over GORM and wires the
// per-aggregate repositories to the current transaction.
//
// Besides transaction control the unit of work is the write side of the
// transactional outbox: every aggregate a repository adds or updates is
// tracked, and on Commit the domain events those aggregates recorded, plus
// events recorded for bulk deletions, are inserted into order_events within
// the same transaction. Either the state change and its event both become
// durable or neither does. After a commit that wrote events the factory's
// commit hook fires so the relay can publish without waiting for its next
// tick.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	...
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"sync"

	"qrave/internal/adapters/out/postgres/menurepo"
	"qrave/internal/adapters/out/postgres/orderrepo"
	"qrave/internal/adapters/out/postgres/outboxrepo"
	"qrave/internal/adapters/out/postgres/restaurantrepo"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record order events.
type eventSource interface {
	DomainEvents() []order.Event
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates unit of work instances sharing one *gorm.DB.
type GormUnitOfWorkFactory struct {
	db *gorm.DB

	mu         sync.RWMutex
	commitHook func()
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// OnCommit registers fn to run after every commit that wrote outbox rows.
// fn must not block.
func (f *GormUnitOfWorkFactory) OnCommit(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commitHook = fn
}

func (f *GormUnitOfWorkFactory) hook() func() {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.commitHook
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		factory: f,
	}
}

// GormUnitOfWork is not safe for concurrent use; create one per command.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	factory *GormUnitOfWorkFactory

	trackedAggregates []trackedAggregate
	recordedEvents    []order.Event
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit writes pending outbox rows and commits. On failure the transaction
// is rolled back and nothing, neither state nor events, is persisted.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	events := uow.pendingEvents()
	if err := outboxrepo.NewGormOutboxRepository(uow.tx).Append(ctx, events); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.clearTracked()
	if len(events) > 0 {
		if hook := uow.factory.hook(); hook != nil {
			hook()
		}
	}
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	uow.recordedEvents = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate remembers an aggregate touched in this transaction. Tracking
// the same pointer twice is harmless.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for _, t := range uow.trackedAggregates {
		if t.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{ID: id, Aggregate: aggregate})
}

// RecordEvents queues events that have no loaded aggregate, e.g. bulk deletes.
func (uow *GormUnitOfWork) RecordEvents(events ...order.Event) {
	uow.recordedEvents = append(uow.recordedEvents, events...)
}

func (uow *GormUnitOfWork) pendingEvents() []order.Event {
	var events []order.Event
	for _, t := range uow.trackedAggregates {
		if src, ok := t.Aggregate.(eventSource); ok {
			events = append(events, src.DomainEvents()...)
		}
	}
	return append(events, uow.recordedEvents...)
}

func (uow *GormUnitOfWork) clearTracked() {
	for _, t := range uow.trackedAggregates {
		if src, ok := t.Aggregate.(eventSource); ok {
			src.ClearDomainEvents()
		}
	}
	uow.trackedAggregates = nil
	uow.recordedEvents = nil
}
