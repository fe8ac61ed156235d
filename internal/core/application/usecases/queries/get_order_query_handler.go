package queries

import (
	"context"

	"qrave/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when no such order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := loadOrders(ctx, h.db, "WHERE id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return orders[0], nil
}
