package queries

import (
	"context"

	"qrave/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns orders in kitchen display order: PENDING
// first, then PREPARING, READY, COMPLETED, CANCELLED; newest first within a
// status; order id breaks ties. The ordering is applied here rather than in
// SQL so every caller sorts with the same rule as the board.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty slice for a restaurant without orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := loadOrders(ctx, h.db, "WHERE restaurant_id = ?", query.RestaurantID().Bytes())
	if err != nil {
		return nil, err
	}

	order.SortForDisplay(orders, OrderView.Key)
	return orders, nil
}
