package orderrepo

import (
	"context"
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects what the unit of work writes to the outbox on
// commit: touched aggregates and events of rows deleted without loading them.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
	RecordEvents(events ...order.Event)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts the order and its items in one statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Restaurant", "Items.MenuItem").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("restaurant", aggregate.RestaurantID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}
	return ToDomain(dto)
}

// Update is a compare-and-swap on version. Only status and version ever
// change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), expectedVersion).
		Updates(map[string]any{
			"status":  aggregate.Status().String(),
			"version": aggregate.Version(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order version",
			errs.NewObjectNotFoundError("order", aggregate.ID().String()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	deleted, err := r.deleteReturning(ctx, "id = ?", id.Bytes())
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) DeleteTerminal(ctx context.Context, restaurantID kernel.UUID) (int, error) {
	if err := restaurantID.Validate(); err != nil {
		return 0, err
	}

	return r.deleteReturning(ctx, "restaurant_id = ? AND status IN ?",
		restaurantID.Bytes(), []string{order.Completed.String(), order.Cancelled.String()})
}

// deleteReturning deletes matching orders (items follow through the foreign
// key) and records an EventDeleted per removed row. A row it cannot map back
// to an order fails the call, leaving the caller's transaction to roll back.
func (r *GormOrderRepository) deleteReturning(ctx context.Context, query string, args ...any) (int, error) {
	var removed []OrderDTO
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{
			{Name: "id"}, {Name: "restaurant_id"}, {Name: "status"}, {Name: "version"},
		}}).
		Where(query, args...).
		Delete(&removed)
	if result.Error != nil {
		return 0, result.Error
	}

	events := make([]order.Event, 0, len(removed))
	for _, dto := range removed {
		id, err := kernel.UUIDFrom(dto.ID)
		if err != nil {
			return 0, err
		}
		restaurantID, err := kernel.UUIDFrom(dto.RestaurantID)
		if err != nil {
			return 0, err
		}
		status, err := order.ParseStatus(dto.Status)
		if err != nil {
			return 0, err
		}
		events = append(events, order.NewDeletedEvent(id, restaurantID, status, dto.Version))
	}
	r.tracker.RecordEvents(events...)

	return len(removed), nil
}
