package restaurantrepo

import (
	"context"
	"errors"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db, tracker: tracker}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("slug", dto.Slug, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"address":       dto.Address,
			"password_hash": dto.PasswordHash,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormRestaurantRepository) GetBySlug(ctx context.Context, slug restaurant.Slug) (*restaurant.Restaurant, error) {
	if err := slug.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", slug.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return nil
}
