package queries

import (
	"context"
	"database/sql"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		id,
		restaurant_id,
		table_number,
		status,
		total,
		customer_note,
		version,
		created_at
	FROM orders
`

// loadOrders runs selectOrders with the given filter and attaches items in
// their original position.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrders+filter, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		v, raw, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		index[raw] = len(orders)
		orders = append(orders, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			quantity,
			price_at_time
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID    uuid.UUID
			menuItemID uuid.NullUUID
			item       OrderItemView
			quantity   int
			price      int64
		)
		if err = itemRows.Scan(&orderID, &menuItemID, &item.Name, &quantity, &price); err != nil {
			return nil, err
		}
		if menuItemID.Valid {
			id, idErr := kernel.UUIDFrom(menuItemID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			item.MenuItemID = &id
		}
		item.Quantity = quantity
		if item.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		if item.Subtotal, err = item.UnitPrice.Multiply(quantity); err != nil {
			return nil, err
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return orders, itemRows.Err()
}

func scanOrder(rows *sql.Rows) (OrderView, uuid.UUID, error) {
	var (
		v            OrderView
		id           uuid.UUID
		restaurantID uuid.UUID
		status       string
		total        int64
	)
	if err := rows.Scan(
		&id,
		&restaurantID,
		&v.TableNumber,
		&status,
		&total,
		&v.CustomerNote,
		&v.Version,
		&v.CreatedAt,
	); err != nil {
		return OrderView{}, id, err
	}

	var err error
	if v.ID, err = kernel.UUIDFrom(id); err != nil {
		return OrderView{}, id, err
	}
	if v.RestaurantID, err = kernel.UUIDFrom(restaurantID); err != nil {
		return OrderView{}, id, err
	}
	if v.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, id, err
	}
	if v.Total, err = kernel.NewMoney(total); err != nil {
		return OrderView{}, id, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.Items = make([]OrderItemView, 0)
	return v, id, nil
}
