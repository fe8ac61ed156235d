// Package restaurantrepo maps restaurant aggregates onto the restaurants table.
package restaurantrepo

import (
	"time"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is a row of the restaurants table. Only the bcrypt hash of
// the password is ever stored.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug         string    `gorm:"type:varchar(63);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Address      string    `gorm:"type:varchar(300);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:           r.ID().Bytes(),
		Slug:         r.Slug().String(),
		Name:         r.Name(),
		Address:      r.Address(),
		PasswordHash: r.Credential().Hash(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	slug, err := restaurant.NewSlug(dto.Slug)
	if err != nil {
		return nil, err
	}
	credential, err := restaurant.CredentialFromHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}
	return restaurant.RestoreRestaurant(id, slug, dto.Name, dto.Address, credential)
}
