// Package orderrepo maps order aggregates onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"qrave/internal/adapters/out/postgres/menurepo"
	"qrave/internal/adapters/out/postgres/restaurantrepo"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of orders. Status is stored by name so the table reads
// the same as the API.
type OrderDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                     `gorm:"type:uuid;not null;index:idx_orders_restaurant_status,priority:1"`
	Restaurant   *restaurantrepo.RestaurantDTO `gorm:"constraint:OnDelete:CASCADE"`
	TableNumber  int                           `gorm:"not null;check:table_number > 0"`
	Status       string                        `gorm:"type:varchar(16);not null;index:idx_orders_restaurant_status,priority:2"`
	Total        int64                         `gorm:"not null"`
	CustomerNote string                        `gorm:"type:text;not null;default:''"`
	Version      int                           `gorm:"not null;default:1"`
	CreatedAt    time.Time                     `gorm:"not null"`
	Items        []OrderItemDTO                `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of order_items. Name and price are the snapshot taken
// when the order was placed; menu_item_id turns NULL once the menu item is
// deleted.
type OrderItemDTO struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	Position    int                   `gorm:"not null"`
	MenuItemID  *uuid.UUID            `gorm:"type:uuid;index"`
	MenuItem    *menurepo.MenuItemDTO `gorm:"constraint:OnDelete:SET NULL"`
	Name        string                `gorm:"type:varchar(120);not null"`
	Quantity    int                   `gorm:"not null;check:quantity > 0"`
	PriceAtTime int64                 `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, it := range items {
		var menuItemID *uuid.UUID
		if it.MenuItemID().Validate() == nil {
			raw := it.MenuItemID().Bytes()
			menuItemID = &raw
		}
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:          uuid.New(),
			OrderID:     orderID,
			Position:    i,
			MenuItemID:  menuItemID,
			Name:        it.Name(),
			Quantity:    it.Quantity(),
			PriceAtTime: it.UnitPrice().Minor(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		RestaurantID: o.RestaurantID().Bytes(),
		TableNumber:  o.TableNumber(),
		Status:       o.Status().String(),
		Total:        o.Total().Minor(),
		CustomerNote: o.CustomerNote(),
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
		Items:        itemDTOs,
	}
}

// ToDomain rebuilds an order from a row with preloaded items ordered by position.
// Query handlers reuse it.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFrom(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var menuItemID kernel.UUID
		if itemDTO.MenuItemID != nil {
			if menuItemID, err = kernel.UUIDFrom(*itemDTO.MenuItemID); err != nil {
				return nil, err
			}
		}
		price, priceErr := kernel.NewMoney(itemDTO.PriceAtTime)
		if priceErr != nil {
			return nil, priceErr
		}
		it, itemErr := order.RestoreItem(menuItemID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	return order.RestoreOrder(order.State{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  dto.TableNumber,
		Items:        items,
		Total:        total,
		Status:       status,
		Version:      dto.Version,
		CustomerNote: dto.CustomerNote,
		CreatedAt:    dto.CreatedAt.UTC(),
	})
}
