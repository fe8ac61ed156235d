package http

import (
	"context"
	"time"

	"qrave/internal/adapters/out/eventbus"
	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/core/application/usecases/queries"
	"qrave/internal/core/domain/model/menu"
	"qrave/internal/core/domain/model/order"
	"qrave/internal/core/domain/model/restaurant"
	"qrave/internal/generated/servers"

	"go.uber.org/zap"
)

// Handler is a command or query handler that produces a result.
type Handler[Q any, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// ExecHandler is a command handler without a result.
type ExecHandler[C any] interface {
	Handle(ctx context.Context, c C) error
}

// Handlers are the use cases the API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder           Handler[commands.CreateOrderCommand, *order.Order]
	ChangeOrderStatus     Handler[commands.ChangeOrderStatusCommand, *order.Order]
	DeleteOrder           ExecHandler[commands.DeleteOrderCommand]
	DeleteCompletedOrders Handler[commands.DeleteCompletedOrdersCommand, int]
	CreateRestaurant      Handler[commands.CreateRestaurantCommand, *restaurant.Restaurant]
	UpdateRestaurant      Handler[commands.UpdateRestaurantCommand, *restaurant.Restaurant]
	DeleteRestaurant      ExecHandler[commands.DeleteRestaurantCommand]
	CreateMenuItem        Handler[commands.CreateMenuItemCommand, *menu.Item]
	UpdateMenuItem        Handler[commands.UpdateMenuItemCommand, *menu.Item]
	DeleteMenuItem        ExecHandler[commands.DeleteMenuItemCommand]

	// Query handlers
	GetOrder        Handler[queries.GetOrderQuery, queries.OrderView]
	ListOrders      Handler[queries.ListOrdersQuery, []queries.OrderView]
	GetRestaurant   Handler[queries.GetRestaurantQuery, queries.RestaurantMenuView]
	ListRestaurants Handler[queries.ListRestaurantsQuery, []queries.RestaurantSummary]
	Login           Handler[queries.LoginQuery, queries.RestaurantView]
}

// Server implements the generated ServerInterface. It translates HTTP
// requests into commands and queries and streams hub events over SSE.
type Server struct {
	h         Handlers
	hub       *eventbus.Hub
	keepAlive time.Duration
	logger    *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, hub *eventbus.Hub, keepAlive time.Duration, logger *zap.Logger) *Server {
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}
	return &Server{h: h, hub: hub, keepAlive: keepAlive, logger: logger.Named("http")}
}
