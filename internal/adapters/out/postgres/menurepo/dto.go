// Package menurepo maps menu items onto the menu_items table.
package menurepo

import (
	"qrave/internal/adapters/out/postgres/restaurantrepo"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO is a row of menu_items. Deleting the owning restaurant
// deletes the row.
type MenuItemDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Restaurant   *restaurantrepo.RestaurantDTO `gorm:"constraint:OnDelete:CASCADE"`
	Name         string                        `gorm:"type:varchar(120);not null"`
	Description  string                        `gorm:"type:text;not null;default:''"`
	Price        int64                         `gorm:"not null;check:price > 0"`
	Category     string                        `gorm:"type:varchar(60);not null"`
	ImageURL     string                        `gorm:"type:text;not null;default:''"`
	IsVegetarian bool                          `gorm:"not null;default:false"`
	IsSpicy      bool                          `gorm:"not null;default:false"`
	Available    bool                          `gorm:"not null;default:true"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(it *menu.Item) MenuItemDTO {
	d := it.Details()
	return MenuItemDTO{
		ID:           it.ID().Bytes(),
		RestaurantID: it.RestaurantID().Bytes(),
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price.Minor(),
		Category:     d.Category,
		ImageURL:     d.ImageURL,
		IsVegetarian: d.IsVegetarian,
		IsSpicy:      d.IsSpicy,
		Available:    d.Available,
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFrom(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, restaurantID, menu.Details{
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        price,
		Category:     dto.Category,
		ImageURL:     dto.ImageURL,
		IsVegetarian: dto.IsVegetarian,
		IsSpicy:      dto.IsSpicy,
		Available:    dto.Available,
	})
}
