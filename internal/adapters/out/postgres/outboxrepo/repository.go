package outboxrepo

import (
	"context"
	"time"

	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append writes events as pending rows. The unit of work calls it inside the
// business transaction.
func (r *GormOutboxRepository) Append(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}
	dtos := make([]OrderEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, fromDomain(e))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOutboxRepository) Pending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&OrderEventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", time.Now().UTC()).Error
}

func (r *GormOutboxRepository) PurgePublished(ctx context.Context, before time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", before).
		Delete(&OrderEventDTO{})
	return int(result.RowsAffected), result.Error
}
