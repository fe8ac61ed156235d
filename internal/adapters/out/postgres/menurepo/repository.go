package menurepo

import (
	"context"
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{db: db, tracker: tracker}
}

func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("restaurant", item.RestaurantID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormMenuRepository) Update(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).
		Select("name", "description", "price", "category", "image_url", "is_vegetarian", "is_spicy", "available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}
	return nil
}

func (r *GormMenuRepository) FindByIDs(
	ctx context.Context,
	restaurantID kernel.UUID,
	ids []kernel.UUID,
) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return []*menu.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID.Bytes(), raw).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		it, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
